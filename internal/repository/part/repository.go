package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/bryanrg22/CalTech-Hacks/internal/logger"
	"github.com/bryanrg22/CalTech-Hacks/internal/model"
)

type repository struct {
	coll *mongo.Collection
}

func NewPartRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) PartByID(ctx context.Context, id string) (*model.Part, error) {
	const op = "repository.part.PartByID"

	var ent PartEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrPartNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) List(ctx context.Context, filter model.PartsFilter) ([]*model.Part, error) {
	const op = "repository.part.List"

	cur, err := r.coll.Find(ctx, BuildMongoFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Error(ctx, op+" failed to close cursor", logger.ErrorF(cerr))
		}
	}()

	out := make([]*model.Part, 0)
	for cur.Next(ctx) {
		var ent PartEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

// UpsertBatch writes each part under its natural id, overwriting existing
// documents. The batch maps part id to part, matching the import file shape.
func (r *repository) UpsertBatch(ctx context.Context, parts map[string]model.Part) error {
	const op = "repository.part.UpsertBatch"

	writes := make([]mongo.WriteModel, 0, len(parts))
	for id, p := range parts {
		if id == "" {
			return fmt.Errorf("%s: part ID is empty", op)
		}
		p.ID = id

		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": id}).
			SetReplacement(EntityFromModel(&p)).
			SetUpsert(true))
	}
	if len(writes) == 0 {
		return nil
	}

	_, err := r.coll.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

package repository

import (
	"context"
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

func NewSaleRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) List(ctx context.Context) ([]*model.Sale, error) {
	const op = "repository.sale.List"

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Error(ctx, op+" failed to close cursor", logger.ErrorF(cerr))
		}
	}()

	out := make([]*model.Sale, 0)
	for cur.Next(ctx) {
		var ent SaleEntity
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

func (r *repository) UpsertBatch(ctx context.Context, sales map[string]model.Sale) error {
	const op = "repository.sale.UpsertBatch"

	writes := make([]mongo.WriteModel, 0, len(sales))
	for id, s := range sales {
		if id == "" {
			return fmt.Errorf("%s: sale ID is empty", op)
		}
		s.ID = id

		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": id}).
			SetReplacement(EntityFromModel(&s)).
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

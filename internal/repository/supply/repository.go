package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/bryanrg22/CalTech-Hacks/internal/logger"
	"github.com/bryanrg22/CalTech-Hacks/internal/model"
)

type repository struct {
	coll *mongo.Collection
}

func NewSupplyRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) List(ctx context.Context) ([]*model.SupplyLink, error) {
	const op = "repository.supply.List"

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Error(ctx, op+" failed to close cursor", logger.ErrorF(cerr))
		}
	}()

	out := make([]*model.SupplyLink, 0)
	for cur.Next(ctx) {
		var ent SupplyLinkEntity
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

// ListByPart returns every supplier offer for one part. Offers are keyed by
// the composite supplier/part id, so the lookup matches on the id suffix.
func (r *repository) ListByPart(ctx context.Context, partID string) ([]*model.SupplyLink, error) {
	const op = "repository.supply.ListByPart"

	links, err := r.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]*model.SupplyLink, 0, len(links))
	for _, l := range links {
		if l.PartID == partID {
			out = append(out, l)
		}
	}

	return out, nil
}

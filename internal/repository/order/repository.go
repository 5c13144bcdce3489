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

func NewOrderRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) OrderByID(ctx context.Context, id string) (*model.Order, error) {
	const op = "repository.order.OrderByID"

	var ent OrderEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrOrderNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) List(ctx context.Context) ([]*model.Order, error) {
	const op = "repository.order.List"

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Error(ctx, op+" failed to close cursor", logger.ErrorF(cerr))
		}
	}()

	out := make([]*model.Order, 0)
	for cur.Next(ctx) {
		var ent OrderEntity
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

func (r *repository) UpsertBatch(ctx context.Context, orders map[string]model.Order) error {
	const op = "repository.order.UpsertBatch"

	writes := make([]mongo.WriteModel, 0, len(orders))
	for id, o := range orders {
		if id == "" {
			return fmt.Errorf("%s: order ID is empty", op)
		}
		o.ID = id

		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": id}).
			SetReplacement(EntityFromModel(&o)).
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

// MarkDelivered transitions an order from ordered to delivered and records
// the delivery timestamp. Delivered orders are final: the filter only
// matches orders still in the ordered state, so a second call conflicts.
func (r *repository) MarkDelivered(ctx context.Context, id string, deliveredAt string) error {
	const op = "repository.order.MarkDelivered"

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": string(model.OrderStatusOrdered)},
		bson.M{"$set": bson.M{
			"status":              string(model.OrderStatusDelivered),
			"actual_delivered_at": deliveredAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		// Distinguish a missing order from one already delivered.
		if _, err := r.OrderByID(ctx, id); err != nil {
			return err
		}
		return model.ErrOrderConflict
	}

	return nil
}

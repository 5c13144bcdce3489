// Package repository owns the per-model demand counters in the specs
// collection. Document naming and shape (specs/scanned_{model}_specs with an
// integer quantity field) are read by other parts of the dashboard and must
// not change without a migration.
package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/bryanrg22/CalTech-Hacks/internal/model"
)

type repository struct {
	coll *mongo.Collection
}

func NewCounterRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

// CounterID builds the persisted counter document id for a product model.
func CounterID(modelID string) string {
	return fmt.Sprintf("scanned_%s_specs", modelID)
}

// IncrementQuantity adds delta to a model's counter. The $inc upsert is a
// single atomic server-side add: the document is created holding delta when
// absent, and concurrent increments to the same counter never lose updates.
// Callers must not read-modify-write around this.
func (r *repository) IncrementQuantity(ctx context.Context, modelID string, delta int64) error {
	const op = "repository.spec.IncrementQuantity"

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": CounterID(modelID)},
		bson.M{"$inc": bson.M{"quantity": delta}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Quantity reads a model's accumulated counter value.
func (r *repository) Quantity(ctx context.Context, modelID string) (int64, error) {
	const op = "repository.spec.Quantity"

	var doc struct {
		Quantity int64 `bson:"quantity"`
	}
	err := r.coll.FindOne(ctx, bson.M{"_id": CounterID(modelID)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, model.ErrDocumentNotFound
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return doc.Quantity, nil
}

// Package repository implements the generic keyed document store behind the
// /api/{collection}/{doc_id} CRUD surface. Only allow-listed collections are
// reachable; counter documents in specs are written by the aggregator alone.
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

var allowedCollections = map[string]struct{}{
	"parts":  {},
	"orders": {},
	"sales":  {},
	"supply": {},
}

type repository struct {
	db *mongo.Database
}

func NewDocumentRepository(db *mongo.Database) *repository {
	return &repository{db: db}
}

func checkCollection(collection string) error {
	if _, ok := allowedCollections[collection]; !ok {
		return fmt.Errorf("%w: %q", model.ErrInvalidCollection, collection)
	}
	return nil
}

func (r *repository) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	const op = "repository.document.Get"

	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	var doc bson.M
	err := r.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doc, nil
}

// Set creates or overwrites the whole document.
func (r *repository) Set(ctx context.Context, collection, id string, data map[string]any) error {
	const op = "repository.document.Set"

	if err := checkCollection(collection); err != nil {
		return err
	}

	doc := bson.M(data)
	delete(doc, "_id")

	_, err := r.db.Collection(collection).ReplaceOne(ctx,
		bson.M{"_id": id},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Update patches individual fields of an existing document. Unlike Set it
// fails when the document is absent.
func (r *repository) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	const op = "repository.document.Update"

	if err := checkCollection(collection); err != nil {
		return err
	}

	upd := bson.M(fields)
	delete(upd, "_id")
	if len(upd) == 0 {
		return nil
	}

	res, err := r.db.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": upd},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrDocumentNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, collection, id string) error {
	const op = "repository.document.Delete"

	if err := checkCollection(collection); err != nil {
		return err
	}

	if _, err := r.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/bryanrg22/CalTech-Hacks/internal/model"
)

func EntityToModel(e *PartEntity) *model.Part {
	if e == nil {
		return nil
	}

	return &model.Part{
		ID:                  e.ID,
		Name:                e.Name,
		Type:                e.Type,
		Quantity:            e.Quantity,
		MinStock:            e.MinStock,
		ReorderQuantity:     e.ReorderQuantity,
		ReorderIntervalDays: e.ReorderIntervalDays,
		Location:            e.Location,
		Weight:              e.Weight,
		UsedInModels:        e.UsedInModels,
		Blocked:             e.Blocked,
		Comments:            e.Comments,
		SuccessorPart:       e.SuccessorPart,
	}
}

func EntityFromModel(p *model.Part) *PartEntity {
	if p == nil {
		return nil
	}

	return &PartEntity{
		ID:                  p.ID,
		Name:                p.Name,
		Type:                p.Type,
		Quantity:            p.Quantity,
		MinStock:            p.MinStock,
		ReorderQuantity:     p.ReorderQuantity,
		ReorderIntervalDays: p.ReorderIntervalDays,
		Location:            p.Location,
		Weight:              p.Weight,
		UsedInModels:        p.UsedInModels,
		Blocked:             p.Blocked,
		Comments:            p.Comments,
		SuccessorPart:       p.SuccessorPart,
	}
}

func BuildMongoFilter(f model.PartsFilter) bson.M {
	q := bson.M{}

	if len(f.IDs) > 0 {
		q["_id"] = bson.M{"$in": f.IDs}
	}
	if len(f.Types) > 0 {
		q["part_type"] = bson.M{"$in": f.Types}
	}

	return q
}

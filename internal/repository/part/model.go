package repository

type PartEntity struct {
	ID                  string   `bson:"_id"`
	Name                string   `bson:"part_name"`
	Type                string   `bson:"part_type"`
	Quantity            int64    `bson:"quantity"`
	MinStock            int64    `bson:"min_stock"`
	ReorderQuantity     int64    `bson:"reorder_quantity"`
	ReorderIntervalDays int64    `bson:"reorder_interval_days"`
	Location            string   `bson:"location,omitempty"`
	Weight              float64  `bson:"weight,omitempty"`
	UsedInModels        []string `bson:"used_in_models,omitempty"`
	Blocked             bool     `bson:"blocked"`
	Comments            string   `bson:"comments,omitempty"`
	SuccessorPart       *string  `bson:"successor_part,omitempty"`
}

package repository

type OrderEntity struct {
	ID                   string  `bson:"_id"`
	PartID               string  `bson:"part_id"`
	SupplierID           string  `bson:"supplier_id"`
	QuantityOrdered      int64   `bson:"quantity_ordered"`
	OrderDate            string  `bson:"order_date"`
	ExpectedDeliveryDate string  `bson:"expected_delivery_date"`
	Status               string  `bson:"status"`
	ActualDeliveredAt    *string `bson:"actual_delivered_at"`
}

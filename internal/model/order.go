package model

type OrderStatus string

const (
	OrderStatusOrdered   OrderStatus = "ordered"
	OrderStatusDelivered OrderStatus = "delivered"
)

type Order struct {
	// Natural identifier of the purchase order.
	ID string
	// Ordered part. Not enforced by the store; the aggregator treats a
	// dangling reference as a skippable condition.
	PartID string
	// Supplier the order was placed with.
	SupplierID string
	// Ordered quantity, positive.
	QuantityOrdered int64
	// Date the order was placed, as supplied in the import file.
	OrderDate string
	// Promised delivery date.
	ExpectedDeliveryDate string
	// Lifecycle status: ordered -> delivered. Delivered orders are final.
	Status OrderStatus
	// Actual delivery timestamp, nil until the order is delivered.
	ActualDeliveredAt *string
}

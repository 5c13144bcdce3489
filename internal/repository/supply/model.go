package repository

type SupplyLinkEntity struct {
	// Composite "{supplier_id}_{part_id}" key; decoded by the converter.
	ID                string  `bson:"_id"`
	PricePerUnit      float64 `bson:"price_per_unit"`
	LeadTimeDays      int64   `bson:"lead_time_days"`
	MinOrderQty       int64   `bson:"min_order_qty"`
	ReliabilityRating float64 `bson:"reliability_rating"`
	Origin            string  `bson:"origin,omitempty"`
}

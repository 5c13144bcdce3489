package model

import "github.com/bryanrg22/CalTech-Hacks/internal/geo"

// SupplyLink is one supplier's offer for one part. The document id in the
// supply collection is the composite key "{supplier_id}_{part_id}"; the
// repository decodes it into the two identifier fields below.
type SupplyLink struct {
	ID           string
	SupplierID   string
	PartID       string
	PricePerUnit float64
	LeadTimeDays int64
	MinOrderQty  int64
	// Reliability rating in [0.0, 1.0].
	ReliabilityRating float64
	// Shipping origin of this supplier, e.g. "Shenzhen".
	Origin string
}

// SupplyRoute is a rendered supplier-to-warehouse path for the map view.
type SupplyRoute struct {
	SupplierID string
	PartID     string
	Points     []geo.Point
}

// SupplierSummary aggregates all supply links of one supplier.
type SupplierSummary struct {
	SupplierID      string
	PartCount       int
	AvgReliability  float64
	AvgLeadTimeDays float64
	Origins         []string
}

package model

// SkippedOrder records an order that referenced a part absent from the
// imported catalog. Skipped orders never abort the batch.
type SkippedOrder struct {
	OrderID string
	PartID  string
}

// IncrementFailure records a counter write that failed. Each increment is
// an independent unit of work; a failure does not stop the batch.
type IncrementFailure struct {
	OrderID string
	ModelID string
	Err     error
}

// AggregationResult summarizes one aggregation run over an order batch.
type AggregationResult struct {
	OrdersProcessed   int
	IncrementsApplied int
	Skipped           []SkippedOrder
	Failures          []IncrementFailure
}

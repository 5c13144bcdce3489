package model

// ImportBatch carries the parsed contents of a bulk import, keyed by the
// documents' natural identifiers. Any of the three maps may be empty.
type ImportBatch struct {
	Parts  map[string]Part
	Orders map[string]Order
	Sales  map[string]Sale
}

func (b ImportBatch) Empty() bool {
	return len(b.Parts) == 0 && len(b.Orders) == 0 && len(b.Sales) == 0
}

type ImportResult struct {
	// Server-generated identifier of this import run.
	ImportID       string
	PartsImported  int
	OrdersImported int
	SalesImported  int
	// Set when the batch contained orders and parts together, which
	// triggers the per-model demand aggregation.
	Aggregation *AggregationResult
}

package importer

// The request mirrors the dashboard import files: three maps keyed by the
// documents' natural ids, any of which may be missing.
type importRequest struct {
	Parts  map[string]partDTO  `json:"parts"`
	Orders map[string]orderDTO `json:"orders"`
	Sales  map[string]saleDTO  `json:"sales"`
}

type partDTO struct {
	Name                string   `json:"part_name"`
	Type                string   `json:"part_type"`
	Quantity            int64    `json:"quantity"`
	MinStock            int64    `json:"min_stock"`
	ReorderQuantity     int64    `json:"reorder_quantity"`
	ReorderIntervalDays int64    `json:"reorder_interval_days"`
	Location            string   `json:"location"`
	Weight              float64  `json:"weight"`
	UsedInModels        []string `json:"used_in_models"`
	Blocked             bool     `json:"blocked"`
	Comments            string   `json:"comments"`
	SuccessorPart       *string  `json:"successor_part"`
}

type orderDTO struct {
	PartID               string  `json:"part_id"`
	SupplierID           string  `json:"supplier_id"`
	QuantityOrdered      int64   `json:"quantity_ordered"`
	OrderDate            string  `json:"order_date"`
	ExpectedDeliveryDate string  `json:"expected_delivery_date"`
	Status               string  `json:"status"`
	ActualDeliveredAt    *string `json:"actual_delivered_at"`
}

type saleDTO struct {
	Model               string `json:"model"`
	Version             string `json:"version"`
	Quantity            int64  `json:"quantity"`
	OrderType           string `json:"order_type"`
	CreatedAt           string `json:"created_at"`
	RequestedDate       string `json:"requested_date"`
	AcceptedRequestDate string `json:"accepted_request_date"`
}

type importResponse struct {
	ImportID       string          `json:"import_id"`
	PartsImported  int             `json:"parts_imported"`
	OrdersImported int             `json:"orders_imported"`
	SalesImported  int             `json:"sales_imported"`
	Aggregation    *aggregationDTO `json:"aggregation,omitempty"`
}

type aggregationDTO struct {
	OrdersProcessed   int          `json:"orders_processed"`
	IncrementsApplied int          `json:"increments_applied"`
	Skipped           []skippedDTO `json:"skipped"`
	Failures          []failureDTO `json:"failures"`
}

type skippedDTO struct {
	OrderID string `json:"order_id"`
	PartID  string `json:"part_id"`
}

type failureDTO struct {
	OrderID string `json:"order_id"`
	ModelID string `json:"model_id"`
	Error   string `json:"error"`
}

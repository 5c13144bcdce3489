package model

type SaleOrderType string

const (
	SaleOrderTypeWebshop        SaleOrderType = "webshop"
	SaleOrderTypeFleetFramework SaleOrderType = "fleet_framework"
)

// Sale is a sales order for a finished product model. Sales feed the
// analytics views only; importing them has no downstream side effects.
type Sale struct {
	ID                  string
	Model               string
	Version             string
	Quantity            int64
	OrderType           SaleOrderType
	CreatedAt           string
	RequestedDate       string
	AcceptedRequestDate string
}

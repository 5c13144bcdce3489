package repository

type SaleEntity struct {
	ID                  string `bson:"_id"`
	Model               string `bson:"model"`
	Version             string `bson:"version"`
	Quantity            int64  `bson:"quantity"`
	OrderType           string `bson:"order_type"`
	CreatedAt           string `bson:"created_at"`
	RequestedDate       string `bson:"requested_date"`
	AcceptedRequestDate string `bson:"accepted_request_date"`
}

// Package orders exposes the purchase order lifecycle endpoints.
package orders

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bryanrg22/CalTech-Hacks/internal/model"
	"github.com/bryanrg22/CalTech-Hacks/internal/transport/http/api"
)

type OrderService interface {
	ListOrders(ctx context.Context) ([]*model.Order, error)
	Deliver(ctx context.Context, orderID string) (*model.Order, error)
}

type orderDTO struct {
	ID                   string  `json:"id"`
	PartID               string  `json:"part_id"`
	SupplierID           string  `json:"supplier_id"`
	QuantityOrdered      int64   `json:"quantity_ordered"`
	OrderDate            string  `json:"order_date"`
	ExpectedDeliveryDate string  `json:"expected_delivery_date"`
	Status               string  `json:"status"`
	ActualDeliveredAt    *string `json:"actual_delivered_at,omitempty"`
}

type handler struct {
	svc OrderService
}

func NewOrderHandler(service OrderService) *handler {
	return &handler{svc: service}
}

func (h *handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.ListOrders(ctx)
	if err != nil {
		api.WriteError(ctx, w, err)
		return
	}

	out := make([]orderDTO, 0, len(orders))
	for _, ord := range orders {
		out = append(out, orderToDTO(ord))
	}

	api.WriteJSON(ctx, w, http.StatusOK, out)
}

func (h *handler) Deliver(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ord, err := h.svc.Deliver(ctx, chi.URLParam(r, "orderID"))
	if err != nil {
		api.WriteError(ctx, w, err)
		return
	}

	api.WriteJSON(ctx, w, http.StatusOK, orderToDTO(ord))
}

func orderToDTO(ord *model.Order) orderDTO {
	return orderDTO{
		ID:                   ord.ID,
		PartID:               ord.PartID,
		SupplierID:           ord.SupplierID,
		QuantityOrdered:      ord.QuantityOrdered,
		OrderDate:            ord.OrderDate,
		ExpectedDeliveryDate: ord.ExpectedDeliveryDate,
		Status:               string(ord.Status),
		ActualDeliveredAt:    ord.ActualDeliveredAt,
	}
}

// Package analytics exposes the dashboard analytics and map endpoints.
package analytics

import (
	"context"
	"net/http"

	"github.com/bryanrg22/CalTech-Hacks/internal/geo"
	"github.com/bryanrg22/CalTech-Hacks/internal/model"
	"github.com/bryanrg22/CalTech-Hacks/internal/transport/http/api"
)

type AnalyticsService interface {
	SupplierSummaries(ctx context.Context) ([]model.SupplierSummary, error)
	LowStockParts(ctx context.Context) ([]*model.Part, error)
	SupplyRoutes(ctx context.Context) ([]model.SupplyRoute, error)
}

type supplierDTO struct {
	SupplierID      string   `json:"supplier_id"`
	PartCount       int      `json:"part_count"`
	AvgReliability  float64  `json:"avg_reliability"`
	AvgLeadTimeDays float64  `json:"avg_lead_time_days"`
	Origins         []string `json:"origins"`
}

type lowStockPartDTO struct {
	ID              string `json:"id"`
	Name            string `json:"part_name"`
	Quantity        int64  `json:"quantity"`
	MinStock        int64  `json:"min_stock"`
	ReorderQuantity int64  `json:"reorder_quantity"`
	Location        string `json:"location"`
}

type routeDTO struct {
	SupplierID string      `json:"supplier_id"`
	PartID     string      `json:"part_id"`
	Points     []geo.Point `json:"points"`
}

type handler struct {
	svc AnalyticsService
}

func NewAnalyticsHandler(service AnalyticsService) *handler {
	return &handler{svc: service}
}

func (h *handler) Suppliers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summaries, err := h.svc.SupplierSummaries(ctx)
	if err != nil {
		api.WriteError(ctx, w, err)
		return
	}

	out := make([]supplierDTO, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, supplierDTO{
			SupplierID:      s.SupplierID,
			PartCount:       s.PartCount,
			AvgReliability:  s.AvgReliability,
			AvgLeadTimeDays: s.AvgLeadTimeDays,
			Origins:         s.Origins,
		})
	}

	api.WriteJSON(ctx, w, http.StatusOK, out)
}

func (h *handler) LowStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	parts, err := h.svc.LowStockParts(ctx)
	if err != nil {
		api.WriteError(ctx, w, err)
		return
	}

	out := make([]lowStockPartDTO, 0, len(parts))
	for _, p := range parts {
		out = append(out, lowStockPartDTO{
			ID:              p.ID,
			Name:            p.Name,
			Quantity:        p.Quantity,
			MinStock:        p.MinStock,
			ReorderQuantity: p.ReorderQuantity,
			Location:        p.Location,
		})
	}

	api.WriteJSON(ctx, w, http.StatusOK, out)
}

func (h *handler) Routes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	routes, err := h.svc.SupplyRoutes(ctx)
	if err != nil {
		api.WriteError(ctx, w, err)
		return
	}

	out := make([]routeDTO, 0, len(routes))
	for _, rt := range routes {
		out = append(out, routeDTO{
			SupplierID: rt.SupplierID,
			PartID:     rt.PartID,
			Points:     rt.Points,
		})
	}

	api.WriteJSON(ctx, w, http.StatusOK, out)
}

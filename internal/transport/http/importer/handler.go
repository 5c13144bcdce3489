// Package importer exposes the bulk import endpoint POST /api/import.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bryanrg22/CalTech-Hacks/internal/model"
	"github.com/bryanrg22/CalTech-Hacks/internal/transport/http/api"
)

type ImportService interface {
	Import(ctx context.Context, batch model.ImportBatch) (*model.ImportResult, error)
}

type handler struct {
	svc ImportService
}

func NewImportHandler(service ImportService) *handler {
	return &handler{svc: service}
}

func (h *handler) Import(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(ctx, w,
			errors.Join(model.ErrValidation, fmt.Errorf("decode body: %w", err)))
		return
	}

	res, err := h.svc.Import(ctx, requestToBatch(req))
	if err != nil {
		api.WriteError(ctx, w, err)
		return
	}

	api.WriteJSON(ctx, w, http.StatusOK, resultToResponse(res))
}

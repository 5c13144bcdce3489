// Package api holds the JSON plumbing shared by the HTTP handlers:
// response writing and the mapping from domain errors to status codes.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bryanrg22/CalTech-Hacks/internal/logger"
	"github.com/bryanrg22/CalTech-Hacks/internal/model"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func WriteJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(ctx, "encode response", logger.ErrorF(err))
	}
}

func WriteMessage(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	WriteJSON(ctx, w, status, messageResponse{Message: msg})
}

// WriteError maps a domain error onto its HTTP status and writes the
// error body. Unknown errors become 500.
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFromError(err)
	WriteJSON(ctx, w, status, errorResponse{Code: status, Message: err.Error()})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrInvalidCollection):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrDocumentNotFound),
		errors.Is(err, model.ErrPartNotFound),
		errors.Is(err, model.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrOrderConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Package document exposes the generic keyed document CRUD under
// /api/{collection}/{doc_id}.
package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bryanrg22/CalTech-Hacks/internal/model"
	"github.com/bryanrg22/CalTech-Hacks/internal/transport/http/api"
)

type DocumentRepository interface {
	Get(ctx context.Context, collection, id string) (map[string]any, error)
	Set(ctx context.Context, collection, id string, data map[string]any) error
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
}

type handler struct {
	repo           DocumentRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewDocumentHandler(
	repo DocumentRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *handler {
	return &handler{
		repo:           repo,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (h *handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.readDBTimeout)
	defer cancel()

	collection, docID := pathParams(r)

	doc, err := h.repo.Get(ctx, collection, docID)
	if err != nil {
		api.WriteError(ctx, w, err)
		return
	}

	api.WriteJSON(ctx, w, http.StatusOK, doc)
}

// Create and Replace share the overwrite semantics of the store: both
// write the full document under the given id.
func (h *handler) Create(w http.ResponseWriter, r *http.Request) {
	h.set(w, r, http.StatusCreated, "document created")
}

func (h *handler) Replace(w http.ResponseWriter, r *http.Request) {
	h.set(w, r, http.StatusOK, "document saved")
}

func (h *handler) set(w http.ResponseWriter, r *http.Request, status int, msg string) {
	ctx, cancel := context.WithTimeout(r.Context(), h.writeDBTimeout)
	defer cancel()

	collection, docID := pathParams(r)

	data, err := decodeBody(r)
	if err != nil {
		api.WriteError(ctx, w, err)
		return
	}

	if err := h.repo.Set(ctx, collection, docID, data); err != nil {
		api.WriteError(ctx, w, err)
		return
	}

	api.WriteMessage(ctx, w, status, msg)
}

func (h *handler) Patch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.writeDBTimeout)
	defer cancel()

	collection, docID := pathParams(r)

	fields, err := decodeBody(r)
	if err != nil {
		api.WriteError(ctx, w, err)
		return
	}

	if err := h.repo.Update(ctx, collection, docID, fields); err != nil {
		api.WriteError(ctx, w, err)
		return
	}

	api.WriteMessage(ctx, w, http.StatusOK, "document updated")
}

func (h *handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.writeDBTimeout)
	defer cancel()

	collection, docID := pathParams(r)

	if err := h.repo.Delete(ctx, collection, docID); err != nil {
		api.WriteError(ctx, w, err)
		return
	}

	api.WriteMessage(ctx, w, http.StatusOK, "document deleted")
}

func pathParams(r *http.Request) (collection, docID string) {
	return chi.URLParam(r, "collection"), chi.URLParam(r, "docID")
}

func decodeBody(r *http.Request) (map[string]any, error) {
	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		return nil, errors.Join(model.ErrValidation, fmt.Errorf("decode body: %w", err))
	}
	return data, nil
}

package document

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bryanrg22/CalTech-Hacks/internal/model"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	args := m.Called(ctx, collection, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *mockRepo) Set(ctx context.Context, collection, id string, data map[string]any) error {
	args := m.Called(ctx, collection, id, data)
	return args.Error(0)
}

func (m *mockRepo) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	args := m.Called(ctx, collection, id, fields)
	return args.Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, collection, id string) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}

func newTestRouter(t *testing.T) (*mockRepo, *chi.Mux) {
	t.Helper()

	repo := &mockRepo{}
	repo.Test(t)
	t.Cleanup(func() { repo.AssertExpectations(t) })

	h := NewDocumentHandler(repo, time.Second, time.Second)

	r := chi.NewRouter()
	r.Route("/api/{collection}/{docID}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Post("/", h.Create)
		r.Put("/", h.Replace)
		r.Patch("/", h.Patch)
		r.Delete("/", h.Delete)
	})

	return repo, r
}

func TestGetDocument(t *testing.T) {
	t.Parallel()

	repo, r := newTestRouter(t)
	repo.On("Get", mock.Anything, "parts", "P340").
		Return(map[string]any{"_id": "P340", "part_name": "Fuel valve"}, nil).
		Once()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/parts/P340", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"_id":"P340","part_name":"Fuel valve"}`, rec.Body.String())
}

func TestGetDocumentUnknownCollection(t *testing.T) {
	t.Parallel()

	repo, r := newTestRouter(t)
	repo.On("Get", mock.Anything, "specs", "S1").
		Return(nil, model.ErrInvalidCollection).
		Once()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/specs/S1", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateDocument(t *testing.T) {
	t.Parallel()

	repo, r := newTestRouter(t)
	repo.On("Set", mock.Anything, "parts", "P1", map[string]any{"quantity": float64(5)}).
		Return(nil).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/api/parts/P1",
		strings.NewReader(`{"quantity": 5}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"document created"}`, rec.Body.String())
}

func TestCreateDocumentBadBody(t *testing.T) {
	t.Parallel()

	_, r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/parts/P1",
		strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchDocumentNotFound(t *testing.T) {
	t.Parallel()

	repo, r := newTestRouter(t)
	repo.On("Update", mock.Anything, "orders", "O404", map[string]any{"status": "delivered"}).
		Return(model.ErrDocumentNotFound).
		Once()

	req := httptest.NewRequest(http.MethodPatch, "/api/orders/O404",
		strings.NewReader(`{"status": "delivered"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteDocument(t *testing.T) {
	t.Parallel()

	repo, r := newTestRouter(t)
	repo.On("Delete", mock.Anything, "sales", "S1").Return(nil).Once()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/sales/S1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"document deleted"}`, rec.Body.String())
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanrg22/CalTech-Hacks/internal/model"
)

// The allow-list guard runs before any database access, so an unknown
// collection must be rejected even without a live connection.
func TestCollectionAllowList(t *testing.T) {
	t.Parallel()

	r := NewDocumentRepository(nil)
	ctx := context.Background()

	for _, collection := range []string{"specs", "users", "", "Parts"} {
		_, err := r.Get(ctx, collection, "doc-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidCollection)

		err = r.Set(ctx, collection, "doc-1", map[string]any{"a": 1})
		assert.ErrorIs(t, err, model.ErrInvalidCollection)

		err = r.Update(ctx, collection, "doc-1", map[string]any{"a": 1})
		assert.ErrorIs(t, err, model.ErrInvalidCollection)

		err = r.Delete(ctx, collection, "doc-1")
		assert.ErrorIs(t, err, model.ErrInvalidCollection)
	}
}

func TestCheckCollectionAllowed(t *testing.T) {
	t.Parallel()

	for _, collection := range []string{"parts", "orders", "sales", "supply"} {
		assert.NoError(t, checkCollection(collection))
	}
}

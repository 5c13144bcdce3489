package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bryanrg22/CalTech-Hacks/internal/model"
	"github.com/bryanrg22/CalTech-Hacks/internal/service/mocks"
)

func TestNotifyLowStock(t *testing.T) {
	t.Parallel()

	sender := mocks.NewMockMessageSender(t)
	svc := NewNotifierService(sender, "#procurement")

	parts := []model.Part{
		{ID: "P2", Name: "Hinge", Quantity: 1, MinStock: 4},
		{ID: "P1", Name: "Fuel valve", Quantity: 2, MinStock: 10},
	}

	sender.
		On("SendMessage", mock.Anything, "#procurement", mock.MatchedBy(func(text string) bool {
			return assert.ObjectsAreEqual(BuildLowStockMessage(parts), text)
		})).
		Return(nil).
		Once()

	require.NoError(t, svc.NotifyLowStock(context.Background(), parts))
}

func TestNotifyLowStockEmpty(t *testing.T) {
	t.Parallel()

	sender := mocks.NewMockMessageSender(t)
	svc := NewNotifierService(sender, "#procurement")

	require.NoError(t, svc.NotifyLowStock(context.Background(), nil))
	sender.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestBuildLowStockMessage(t *testing.T) {
	t.Parallel()

	got := BuildLowStockMessage([]model.Part{
		{ID: "P2", Name: "Hinge", Quantity: 1, MinStock: 4},
		{ID: "P1", Quantity: 2, MinStock: 10}, // unnamed part falls back to its id
	})

	want := ":warning: 2 part(s) below minimum stock:\n" +
		"• P1 (P1): 2 on hand, minimum 10\n" +
		"• Hinge (P2): 1 on hand, minimum 4"
	assert.Equal(t, want, got)
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bryanrg22/CalTech-Hacks/internal/model"
	"github.com/bryanrg22/CalTech-Hacks/internal/service/mocks"
)

const testReadTimeout = time.Second

func TestSupplierSummaries(t *testing.T) {
	t.Parallel()

	supply := mocks.NewMockSupplyRepository(t)
	svc := NewAnalyticsService(supply, mocks.NewMockPartRepository(t), testReadTimeout)

	supply.On("List", mock.Anything).Return([]*model.SupplyLink{
		{ID: "SupA_P1", SupplierID: "SupA", PartID: "P1", ReliabilityRating: 0.9, LeadTimeDays: 10, Origin: "Shenzhen"},
		{ID: "SupA_P2", SupplierID: "SupA", PartID: "P2", ReliabilityRating: 0.7, LeadTimeDays: 20, Origin: "Shenzhen"},
		{ID: "SupB_P1", SupplierID: "SupB", PartID: "P1", ReliabilityRating: 0.5, LeadTimeDays: 5, Origin: "Berlin"},
		// Malformed key: decoded to owner only, still grouped.
		{ID: "SupC", SupplierID: "SupC", PartID: "", ReliabilityRating: 1.0, LeadTimeDays: 1},
	}, nil).Once()

	got, err := svc.SupplierSummaries(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "SupA", got[0].SupplierID)
	assert.Equal(t, 2, got[0].PartCount)
	assert.InDelta(t, 0.8, got[0].AvgReliability, 1e-9)
	assert.InDelta(t, 15.0, got[0].AvgLeadTimeDays, 1e-9)
	assert.Equal(t, []string{"Shenzhen"}, got[0].Origins)

	assert.Equal(t, "SupB", got[1].SupplierID)
	assert.Equal(t, 1, got[1].PartCount)

	// The unknown-part supplier keeps its row but counts no parts.
	assert.Equal(t, "SupC", got[2].SupplierID)
	assert.Zero(t, got[2].PartCount)
	assert.Empty(t, got[2].Origins)
}

func TestSupplierSummariesRepositoryError(t *testing.T) {
	t.Parallel()

	supply := mocks.NewMockSupplyRepository(t)
	svc := NewAnalyticsService(supply, mocks.NewMockPartRepository(t), testReadTimeout)

	supply.On("List", mock.Anything).Return(nil, errors.New("db read failed")).Once()

	got, err := svc.SupplierSummaries(context.Background())

	require.Error(t, err)
	assert.ErrorContains(t, err, "db read failed")
	assert.Nil(t, got)
}

func TestSupplyRoutes(t *testing.T) {
	t.Parallel()

	supply := mocks.NewMockSupplyRepository(t)
	parts := mocks.NewMockPartRepository(t)
	svc := NewAnalyticsService(supply, parts, testReadTimeout)

	supply.On("List", mock.Anything).Return([]*model.SupplyLink{
		{ID: "SupA_P1", SupplierID: "SupA", PartID: "P1"},
		// Unknown supplier has no origin coordinates and is skipped.
		{ID: "SupX_P1", SupplierID: "SupX", PartID: "P1"},
	}, nil).Once()
	parts.On("List", mock.Anything, model.PartsFilter{}).Return([]*model.Part{
		{ID: "P1", Location: "WH_ATL"},
	}, nil).Once()

	got, err := svc.SupplyRoutes(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "SupA", got[0].SupplierID)
	assert.Equal(t, "P1", got[0].PartID)
	assert.NotEmpty(t, got[0].Points)
}

func TestLowStockParts(t *testing.T) {
	t.Parallel()

	parts := mocks.NewMockPartRepository(t)
	svc := NewAnalyticsService(mocks.NewMockSupplyRepository(t), parts, testReadTimeout)

	parts.On("List", mock.Anything, model.PartsFilter{}).Return([]*model.Part{
		{ID: "P1", Quantity: 2, MinStock: 10},
		{ID: "P2", Quantity: 50, MinStock: 10},
		{ID: "P3", Quantity: 1, MinStock: 10, Blocked: true},
		{ID: "P4", Quantity: 10, MinStock: 10}, // at threshold is not low
	}, nil).Once()

	got, err := svc.LowStockParts(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "P1", got[0].ID)
}

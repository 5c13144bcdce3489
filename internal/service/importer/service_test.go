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

const testWriteTimeout = time.Second

type deps struct {
	parts      *mocks.MockPartRepository
	orders     *mocks.MockOrderRepository
	sales      *mocks.MockSaleRepository
	aggregator *mocks.MockAggregator
	notifier   *mocks.MockLowStockNotifier
}

func newDeps(t *testing.T) deps {
	return deps{
		parts:      mocks.NewMockPartRepository(t),
		orders:     mocks.NewMockOrderRepository(t),
		sales:      mocks.NewMockSaleRepository(t),
		aggregator: mocks.NewMockAggregator(t),
		notifier:   mocks.NewMockLowStockNotifier(t),
	}
}

func newSvc(d deps) *service {
	return NewImporterService(d.parts, d.orders, d.sales, d.aggregator, d.notifier, testWriteTimeout)
}

func TestImportEmptyBatch(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	svc := newSvc(d)

	res, err := svc.Import(context.Background(), model.ImportBatch{})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Nil(t, res)
}

func TestImportOrdersWithPartsTriggersAggregation(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	svc := newSvc(d)

	parts := map[string]model.Part{
		"P340": {Name: "Fuel valve", Quantity: 40, MinStock: 10, UsedInModels: []string{"S1_V1"}},
	}
	orders := map[string]model.Order{
		"O1": {PartID: "P340", QuantityOrdered: 120, Status: model.OrderStatusOrdered},
	}

	wantAgg := model.AggregationResult{OrdersProcessed: 1, IncrementsApplied: 1}

	d.parts.On("UpsertBatch", mock.Anything, parts).Return(nil).Once()
	d.orders.On("UpsertBatch", mock.Anything, orders).Return(nil).Once()
	// The aggregation runs on the imported batch itself, not a re-read of
	// the collections.
	d.aggregator.On("Apply", mock.Anything, orders, parts).Return(wantAgg).Once()

	res, err := svc.Import(context.Background(), model.ImportBatch{Parts: parts, Orders: orders})

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.NotEmpty(t, res.ImportID)
	assert.Equal(t, 1, res.PartsImported)
	assert.Equal(t, 1, res.OrdersImported)
	assert.Zero(t, res.SalesImported)
	require.NotNil(t, res.Aggregation)
	assert.Equal(t, wantAgg, *res.Aggregation)
}

func TestImportOrdersWithoutPartsSkipsAggregation(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	svc := newSvc(d)

	orders := map[string]model.Order{
		"O1": {PartID: "P340", QuantityOrdered: 120},
	}

	d.orders.On("UpsertBatch", mock.Anything, orders).Return(nil).Once()

	res, err := svc.Import(context.Background(), model.ImportBatch{Orders: orders})

	require.NoError(t, err)
	assert.Nil(t, res.Aggregation)
	d.aggregator.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything)
}

func TestImportSalesOnly(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	svc := newSvc(d)

	sales := map[string]model.Sale{
		"SO1": {Model: "S1", Version: "V1", Quantity: 3, OrderType: model.SaleOrderTypeWebshop},
	}

	d.sales.On("UpsertBatch", mock.Anything, sales).Return(nil).Once()

	res, err := svc.Import(context.Background(), model.ImportBatch{Sales: sales})

	require.NoError(t, err)
	assert.Equal(t, 1, res.SalesImported)
	assert.Nil(t, res.Aggregation)
}

func TestImportNotifiesLowStock(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	svc := newSvc(d)

	parts := map[string]model.Part{
		"P1": {Quantity: 2, MinStock: 10},               // low
		"P2": {Quantity: 50, MinStock: 10},              // fine
		"P3": {Quantity: 1, MinStock: 10, Blocked: true}, // blocked, ignored
	}

	d.parts.On("UpsertBatch", mock.Anything, parts).Return(nil).Once()
	d.notifier.
		On("NotifyLowStock", mock.Anything, mock.MatchedBy(func(low []model.Part) bool {
			return len(low) == 1 && low[0].ID == "P1"
		})).
		Return(nil).
		Once()

	_, err := svc.Import(context.Background(), model.ImportBatch{Parts: parts})
	require.NoError(t, err)
}

func TestImportNotifierFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	svc := newSvc(d)

	parts := map[string]model.Part{
		"P1": {Quantity: 0, MinStock: 5},
	}

	d.parts.On("UpsertBatch", mock.Anything, parts).Return(nil).Once()
	d.notifier.
		On("NotifyLowStock", mock.Anything, mock.Anything).
		Return(errors.New("slack unreachable")).
		Once()

	res, err := svc.Import(context.Background(), model.ImportBatch{Parts: parts})

	require.NoError(t, err)
	assert.Equal(t, 1, res.PartsImported)
}

func TestImportRepositoryFailure(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	svc := newSvc(d)

	parts := map[string]model.Part{"P1": {Quantity: 9, MinStock: 1}}

	d.parts.
		On("UpsertBatch", mock.Anything, parts).
		Return(errors.New("bulk write failed")).
		Once()

	res, err := svc.Import(context.Background(), model.ImportBatch{Parts: parts})

	require.Error(t, err)
	assert.ErrorContains(t, err, "bulk write failed")
	assert.Nil(t, res)
}

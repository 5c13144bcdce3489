// Package service implements the bulk import entry point: parts, orders and
// sales batches are written to their collections, and an orders batch that
// arrives together with a parts batch triggers the demand aggregation.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bryanrg22/CalTech-Hacks/internal/logger"
	"github.com/bryanrg22/CalTech-Hacks/internal/model"
)

type PartRepository interface {
	UpsertBatch(ctx context.Context, parts map[string]model.Part) error
}

type OrderRepository interface {
	UpsertBatch(ctx context.Context, orders map[string]model.Order) error
}

type SaleRepository interface {
	UpsertBatch(ctx context.Context, sales map[string]model.Sale) error
}

type Aggregator interface {
	Apply(ctx context.Context, orders map[string]model.Order, parts map[string]model.Part) model.AggregationResult
}

type LowStockNotifier interface {
	NotifyLowStock(ctx context.Context, parts []model.Part) error
}

type service struct {
	parts          PartRepository
	orders         OrderRepository
	sales          SaleRepository
	aggregator     Aggregator
	notifier       LowStockNotifier
	writeDBTimeout time.Duration
}

func NewImporterService(
	parts PartRepository,
	orders OrderRepository,
	sales SaleRepository,
	aggregator Aggregator,
	notifier LowStockNotifier,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		parts:          parts,
		orders:         orders,
		sales:          sales,
		aggregator:     aggregator,
		notifier:       notifier,
		writeDBTimeout: writeDBTimeout,
	}
}

// Import persists the batch and runs the side effects of an import: the
// order aggregation when orders and parts arrive together, and a low-stock
// notification when the imported parts contain any below minimum stock.
// The aggregation consumes the batch data passed in here, never a cached
// copy of the collections.
func (s *service) Import(ctx context.Context, batch model.ImportBatch) (*model.ImportResult, error) {
	const op = "importer.service.Import"

	if batch.Empty() {
		return nil, fmt.Errorf("%s: %w: empty import batch", op, model.ErrValidation)
	}

	res := &model.ImportResult{ImportID: uuid.NewString()}
	log := logger.With(logger.String("import_id", res.ImportID))

	if len(batch.Parts) > 0 {
		if err := s.upsertParts(ctx, batch.Parts); err != nil {
			log.Error(ctx, "upsert parts", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		res.PartsImported = len(batch.Parts)
	}

	if len(batch.Orders) > 0 {
		if err := s.upsertOrders(ctx, batch.Orders); err != nil {
			log.Error(ctx, "upsert orders", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		res.OrdersImported = len(batch.Orders)
	}

	if len(batch.Sales) > 0 {
		if err := s.upsertSales(ctx, batch.Sales); err != nil {
			log.Error(ctx, "upsert sales", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		res.SalesImported = len(batch.Sales)
	}

	if len(batch.Orders) > 0 && len(batch.Parts) > 0 {
		agg := s.aggregator.Apply(ctx, batch.Orders, batch.Parts)
		res.Aggregation = &agg
	}

	if low := lowStockParts(batch.Parts); len(low) > 0 {
		// Best effort: a notification failure never fails the import.
		if err := s.notifier.NotifyLowStock(ctx, low); err != nil {
			log.Warn(ctx, "low stock notification", logger.ErrorF(err))
		}
	}

	log.Info(ctx, op+" done",
		logger.Int("parts", res.PartsImported),
		logger.Int("orders", res.OrdersImported),
		logger.Int("sales", res.SalesImported),
	)

	return res, nil
}

func (s *service) upsertParts(ctx context.Context, parts map[string]model.Part) error {
	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	return s.parts.UpsertBatch(ctx, parts)
}

func (s *service) upsertOrders(ctx context.Context, orders map[string]model.Order) error {
	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	return s.orders.UpsertBatch(ctx, orders)
}

func (s *service) upsertSales(ctx context.Context, sales map[string]model.Sale) error {
	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	return s.sales.UpsertBatch(ctx, sales)
}

func lowStockParts(parts map[string]model.Part) []model.Part {
	low := make([]model.Part, 0)
	for id, p := range parts {
		p.ID = id
		if p.NeedsReorder() {
			low = append(low, p)
		}
	}
	return low
}

// Package service implements the order-fulfillment aggregation: each
// imported order's quantity is fanned out to the demand counter of every
// product model that consumes the ordered part.
package service

import (
	"context"
	"time"

	"github.com/bryanrg22/CalTech-Hacks/internal/logger"
	"github.com/bryanrg22/CalTech-Hacks/internal/model"
)

// CounterStore is the atomic-increment primitive of the document store.
// An increment creates the counter holding delta when it does not exist yet.
type CounterStore interface {
	IncrementQuantity(ctx context.Context, modelID string, delta int64) error
}

type service struct {
	counters       CounterStore
	writeDBTimeout time.Duration
}

func NewAggregatorService(counters CounterStore, writeDBTimeout time.Duration) *service {
	return &service{counters: counters, writeDBTimeout: writeDBTimeout}
}

// Apply walks the order batch, resolves each order's part in the supplied
// catalog and increments the counter of every model the part feeds by the
// ordered quantity. The inputs are not mutated; the batch is supplied
// explicitly so the aggregator holds no shared state of its own.
//
// Apply is best effort throughout. An order whose part is missing from the
// catalog is skipped and reported; a failed counter write is reported and
// the remaining increments still run. Nothing aborts the batch.
//
// Apply is NOT idempotent: increments are additive and no record is kept of
// which orders were already applied, so re-applying a batch double-counts.
func (s *service) Apply(
	ctx context.Context,
	orders map[string]model.Order,
	parts map[string]model.Part,
) model.AggregationResult {
	const op = "aggregator.service.Apply"
	log := logger.With(
		logger.Int("orders", len(orders)),
		logger.Int("parts", len(parts)),
	)

	var res model.AggregationResult

	for orderID, ord := range orders {
		part, ok := parts[ord.PartID]
		if !ok {
			log.Warn(ctx, "order references unknown part",
				logger.String("order_id", orderID),
				logger.String("part_id", ord.PartID),
			)
			res.Skipped = append(res.Skipped, model.SkippedOrder{
				OrderID: orderID,
				PartID:  ord.PartID,
			})
			continue
		}

		for _, modelID := range part.UsedInModels {
			if err := s.increment(ctx, modelID, ord.QuantityOrdered); err != nil {
				log.Error(ctx, "increment model counter",
					logger.String("order_id", orderID),
					logger.String("model_id", modelID),
					logger.ErrorF(err),
				)
				res.Failures = append(res.Failures, model.IncrementFailure{
					OrderID: orderID,
					ModelID: modelID,
					Err:     err,
				})
				continue
			}
			res.IncrementsApplied++
		}

		res.OrdersProcessed++
	}

	log.Info(ctx, op+" done",
		logger.Int("orders_processed", res.OrdersProcessed),
		logger.Int("increments_applied", res.IncrementsApplied),
		logger.Int("skipped", len(res.Skipped)),
		logger.Int("failures", len(res.Failures)),
	)

	return res
}

func (s *service) increment(ctx context.Context, modelID string, delta int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	return s.counters.IncrementQuantity(ctx, modelID, delta)
}

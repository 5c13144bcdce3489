// Package service owns the order lifecycle operations exposed over HTTP.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bryanrg22/CalTech-Hacks/internal/logger"
	"github.com/bryanrg22/CalTech-Hacks/internal/model"
)

type OrderRepository interface {
	OrderByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context) ([]*model.Order, error)
	MarkDelivered(ctx context.Context, id string, deliveredAt string) error
}

type service struct {
	repo           OrderRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
	now            func() time.Time
}

func NewOrderService(
	repo OrderRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
		now:            time.Now,
	}
}

func (s *service) Order(ctx context.Context, orderID string) (*model.Order, error) {
	const op = "orders.service.Order"

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, errors.Join(model.ErrValidation, errors.New("order id must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	ord, err := s.repo.OrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ord, nil
}

func (s *service) ListOrders(ctx context.Context) ([]*model.Order, error) {
	const op = "orders.service.ListOrders"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list orders", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// Deliver transitions an order to delivered, stamping the delivery time.
// Delivered orders are final; a repeat call returns ErrOrderConflict.
func (s *service) Deliver(ctx context.Context, orderID string) (*model.Order, error) {
	const op = "orders.service.Deliver"
	log := logger.With(logger.String("order_id", orderID))

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		log.Error(ctx, "validation: empty order id")
		return nil, errors.Join(model.ErrValidation, errors.New("order id must be non-empty"))
	}

	deliveredAt := s.now().UTC().Format(time.RFC3339)

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.MarkDelivered(ctx, orderID, deliveredAt); err != nil {
		log.Error(ctx, "mark delivered", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ord, err := s.repo.OrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ord, nil
}

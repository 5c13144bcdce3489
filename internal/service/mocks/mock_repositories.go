package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bryanrg22/CalTech-Hacks/internal/model"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type MockPartRepository struct {
	mock.Mock
}

func NewMockPartRepository(t testingT) *MockPartRepository {
	m := &MockPartRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPartRepository) List(ctx context.Context, filter model.PartsFilter) ([]*model.Part, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Part), args.Error(1)
}

func (m *MockPartRepository) UpsertBatch(ctx context.Context, parts map[string]model.Part) error {
	args := m.Called(ctx, parts)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func NewMockOrderRepository(t testingT) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderRepository) OrderByID(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Order), args.Error(1)
}

func (m *MockOrderRepository) UpsertBatch(ctx context.Context, orders map[string]model.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

func (m *MockOrderRepository) MarkDelivered(ctx context.Context, id string, deliveredAt string) error {
	args := m.Called(ctx, id, deliveredAt)
	return args.Error(0)
}

type MockSaleRepository struct {
	mock.Mock
}

func NewMockSaleRepository(t testingT) *MockSaleRepository {
	m := &MockSaleRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSaleRepository) UpsertBatch(ctx context.Context, sales map[string]model.Sale) error {
	args := m.Called(ctx, sales)
	return args.Error(0)
}

type MockSupplyRepository struct {
	mock.Mock
}

func NewMockSupplyRepository(t testingT) *MockSupplyRepository {
	m := &MockSupplyRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSupplyRepository) List(ctx context.Context) ([]*model.SupplyLink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.SupplyLink), args.Error(1)
}

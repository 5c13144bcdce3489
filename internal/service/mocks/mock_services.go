package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bryanrg22/CalTech-Hacks/internal/model"
)

type MockAggregator struct {
	mock.Mock
}

func NewMockAggregator(t testingT) *MockAggregator {
	m := &MockAggregator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAggregator) Apply(
	ctx context.Context,
	orders map[string]model.Order,
	parts map[string]model.Part,
) model.AggregationResult {
	args := m.Called(ctx, orders, parts)
	return args.Get(0).(model.AggregationResult)
}

type MockLowStockNotifier struct {
	mock.Mock
}

func NewMockLowStockNotifier(t testingT) *MockLowStockNotifier {
	m := &MockLowStockNotifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLowStockNotifier) NotifyLowStock(ctx context.Context, parts []model.Part) error {
	args := m.Called(ctx, parts)
	return args.Error(0)
}

type MockMessageSender struct {
	mock.Mock
}

func NewMockMessageSender(t testingT) *MockMessageSender {
	m := &MockMessageSender{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockMessageSender) SendMessage(ctx context.Context, channel, text string) error {
	args := m.Called(ctx, channel, text)
	return args.Error(0)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCounterStore struct {
	mock.Mock
}

func NewMockCounterStore(t testingT) *MockCounterStore {
	m := &MockCounterStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCounterStore) IncrementQuantity(ctx context.Context, modelID string, delta int64) error {
	args := m.Called(ctx, modelID, delta)
	return args.Error(0)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docdigest/internal/domain"
)

// MockSummaryStore is a mock implementation of port.SummaryStore.
type MockSummaryStore struct {
	mock.Mock
}

func (m *MockSummaryStore) Put(ctx context.Context, record *domain.SummaryRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

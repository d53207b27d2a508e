package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docdigest/internal/domain"
)

// MockNotifier is a mock implementation of port.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Publish(ctx context.Context, msg domain.NotificationMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

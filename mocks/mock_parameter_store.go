package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockParameterStore is a mock implementation of port.ParameterStore.
type MockParameterStore struct {
	mock.Mock
}

func (m *MockParameterStore) GetParameter(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docdigest/internal/domain"
)

// MockCallbackSender is a mock implementation of port.CallbackSender.
type MockCallbackSender struct {
	mock.Mock
}

func (m *MockCallbackSender) Send(ctx context.Context, url string, resp *domain.ProvisioningResponse) bool {
	args := m.Called(ctx, url, resp)
	return args.Bool(0)
}

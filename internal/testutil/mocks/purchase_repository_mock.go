package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"codequest/internal/models"
)

// MockPurchaseRepository is a mock implementation of repository.PurchaseRepository
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) ListByPlayer(ctx context.Context, playerID string) (map[string]bool, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockPurchaseRepository) Insert(ctx context.Context, purchase models.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

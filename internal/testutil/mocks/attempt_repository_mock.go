package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"codequest/internal/models"
)

// MockAttemptRepository is a mock implementation of repository.AttemptRepository
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) Insert(ctx context.Context, attempt models.Attempt) (int64, error) {
	args := m.Called(ctx, attempt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAttemptRepository) List(ctx context.Context, filter models.AttemptFilter) ([]models.Attempt, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attempt), args.Error(1)
}

func (m *MockAttemptRepository) CountForLevel(ctx context.Context, playerID string, levelID int) (int, error) {
	args := m.Called(ctx, playerID, levelID)
	return args.Int(0), args.Error(1)
}

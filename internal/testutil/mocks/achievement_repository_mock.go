package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockAchievementRepository is a mock implementation of repository.AchievementRepository
type MockAchievementRepository struct {
	mock.Mock
}

func (m *MockAchievementRepository) Earned(ctx context.Context, playerID string) (map[string]time.Time, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]time.Time), args.Error(1)
}

func (m *MockAchievementRepository) Award(ctx context.Context, playerID, achievementID string, earnedAt time.Time) error {
	args := m.Called(ctx, playerID, achievementID, earnedAt)
	return args.Error(0)
}

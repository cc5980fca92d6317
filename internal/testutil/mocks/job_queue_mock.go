package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueStatsRefresh(playerID string) error {
	args := m.Called(playerID)
	return args.Error(0)
}

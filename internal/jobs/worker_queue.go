package jobs

import (
	"codequest/internal/repository"
	"codequest/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	statsPool *worker.Pool
	statsRepo repository.StatsRepository
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(statsPool *worker.Pool, statsRepo repository.StatsRepository) JobQueue {
	return &WorkerQueue{
		statsPool: statsPool,
		statsRepo: statsRepo,
	}
}

func (q *WorkerQueue) EnqueueStatsRefresh(playerID string) error {
	return q.statsPool.Submit(&worker.StatsRefreshJob{
		StatsRepo: q.statsRepo,
		PlayerID:  playerID,
	})
}

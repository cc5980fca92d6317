package worker

import (
	"context"

	"codequest/internal/logger"
	"codequest/internal/repository"
)

// StatsRefreshJob recomputes a player's cached leaderboard row after an
// attempt lands.
type StatsRefreshJob struct {
	StatsRepo repository.StatsRepository
	PlayerID  string
}

func (j *StatsRefreshJob) Name() string { return "stats_refresh" }

func (j *StatsRefreshJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("player_id", j.PlayerID)
	if err := j.StatsRepo.RefreshLeaderboard(ctx, j.PlayerID); err != nil {
		log.Error("failed to refresh leaderboard stats: %v", err)
		return err
	}
	log.Debug("leaderboard stats refreshed")
	return nil
}

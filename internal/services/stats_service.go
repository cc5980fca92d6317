package services

import (
	"context"

	"codequest/internal/catalog"
	"codequest/internal/engine"
	"codequest/internal/errors"
	"codequest/internal/logger"
	"codequest/internal/models"
	"codequest/internal/repository"
)

// StatsService handles dashboard, achievement-progress and leaderboard reads.
type StatsService interface {
	GetOverview(ctx context.Context, playerID string) (*models.PlayerOverview, error)
	// GetRecentActivity returns the newest attempts first.
	GetRecentActivity(ctx context.Context, playerID string, limit int) ([]models.Attempt, error)
	GetAchievementProgress(ctx context.Context, playerID string) ([]models.AchievementProgress, error)
	GetLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

type statsService struct {
	catalog     *catalog.Catalog
	evaluator   *engine.AchievementEvaluator
	players     PlayerService
	attemptRepo repository.AttemptRepository
	statsRepo   repository.StatsRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(
	cat *catalog.Catalog,
	players PlayerService,
	attemptRepo repository.AttemptRepository,
	statsRepo repository.StatsRepository,
) StatsService {
	return &statsService{
		catalog:     cat,
		evaluator:   engine.NewAchievementEvaluator(cat.Achievements()),
		players:     players,
		attemptRepo: attemptRepo,
		statsRepo:   statsRepo,
	}
}

func (s *statsService) GetOverview(ctx context.Context, playerID string) (*models.PlayerOverview, error) {
	log := logger.FromContext(ctx)
	log.Debug("building overview: player=%s", playerID)

	player, err := s.players.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	totalLevels := len(s.catalog.Levels())
	var totalStars int
	for _, stars := range player.LevelStars {
		totalStars += stars
	}

	overview := &models.PlayerOverview{
		Username:             player.Username,
		CurrentLevel:         player.CurrentLevel,
		TotalXP:              player.TotalXP,
		TotalCoins:           player.TotalCoins,
		LearningStreak:       player.LearningStreak,
		LevelsCompleted:      len(player.CompletedLevels),
		TotalLevels:          totalLevels,
		TotalStars:           totalStars,
		MaxStars:             totalLevels * 3,
		AverageScore:         player.AverageScore,
		PerfectScores:        player.PerfectScores,
		AchievementsUnlocked: len(player.Achievements),
		TotalAchievements:    len(s.catalog.Achievements()),
		RewardsPurchased:     len(player.PurchasedRewards),
	}
	if totalLevels > 0 {
		overview.CompletionPercentage = float64(overview.LevelsCompleted) / float64(totalLevels) * 100
		overview.StarPercentage = float64(totalStars) / float64(overview.MaxStars) * 100
	}
	return overview, nil
}

func (s *statsService) GetRecentActivity(ctx context.Context, playerID string, limit int) ([]models.Attempt, error) {
	log := logger.FromContext(ctx)
	log.Debug("loading recent activity: player=%s, limit=%d", playerID, limit)

	if limit <= 0 {
		limit = 5
	}
	attempts, err := s.attemptRepo.List(ctx, models.AttemptFilter{
		PlayerID: playerID,
		OrderDir: "DESC",
		Limit:    limit,
	})
	if err != nil {
		log.Error("failed to load recent activity: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return attempts, nil
}

func (s *statsService) GetAchievementProgress(ctx context.Context, playerID string) ([]models.AchievementProgress, error) {
	log := logger.FromContext(ctx)
	log.Debug("building achievement progress: player=%s", playerID)

	player, err := s.players.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	attempts, err := s.attemptRepo.List(ctx, models.AttemptFilter{PlayerID: playerID})
	if err != nil {
		log.Error("failed to load attempts: %v", err)
		return nil, errors.NewInternalError(err)
	}

	stats := engine.BuildStats(player, attempts)
	return s.evaluator.Progress(stats, player.Achievements), nil
}

func (s *statsService) GetLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting leaderboard: limit=%d", limit)

	if limit <= 0 {
		limit = 10
	}
	entries, err := s.statsRepo.Leaderboard(ctx, limit)
	if err != nil {
		log.Error("failed to get leaderboard: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return entries, nil
}

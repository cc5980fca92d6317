package repository

import (
	"context"
	"time"

	"codequest/internal/models"
)

// PlayerRepository handles the core player record. Derived progress fields
// are NOT stored here; they are rebuilt from the attempts log on load.
type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	Get(ctx context.Context, id string) (*models.Player, error)
	GetByUsername(ctx context.Context, username string) (*models.Player, error)
	// Save persists the mutable counters (coins, xp, streak, frontier,
	// activity and login timestamps).
	Save(ctx context.Context, player *models.Player) error
}

// AttemptRepository handles the append-only performance history.
type AttemptRepository interface {
	Insert(ctx context.Context, attempt models.Attempt) (int64, error)
	List(ctx context.Context, filter models.AttemptFilter) ([]models.Attempt, error)
	CountForLevel(ctx context.Context, playerID string, levelID int) (int, error)
}

// AchievementRepository handles earned-achievement rows.
type AchievementRepository interface {
	Earned(ctx context.Context, playerID string) (map[string]time.Time, error)
	// Award is idempotent: re-awarding an id the player holds is a no-op.
	Award(ctx context.Context, playerID, achievementID string, earnedAt time.Time) error
}

// PurchaseRepository handles shop purchases.
type PurchaseRepository interface {
	ListByPlayer(ctx context.Context, playerID string) (map[string]bool, error)
	Insert(ctx context.Context, purchase models.Purchase) error
}

// StatsRepository maintains the leaderboard cache.
type StatsRepository interface {
	// RefreshLeaderboard recomputes one player's cached leaderboard row
	// from the players/attempts/achievements tables.
	RefreshLeaderboard(ctx context.Context, playerID string) error
	Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

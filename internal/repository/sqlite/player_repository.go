package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"codequest/internal/logger"
	"codequest/internal/models"
	"codequest/internal/repository"
)

type playerRepository struct {
	db *sql.DB
}

// NewPlayerRepository creates a new PlayerRepository implementation
func NewPlayerRepository(db *sql.DB) repository.PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, p *models.Player) error {
	log := logger.FromContext(ctx).WithPrefix("player_repo")
	log.Debug("creating player: username=%s", p.Username)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO players (id, username, password_hash, current_level, total_xp, total_coins, learning_streak, last_activity_date, total_time_seconds, created_at, last_login_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, p.ID, p.Username, p.PasswordHash, p.CurrentLevel, p.TotalXP, p.TotalCoins, p.LearningStreak, p.LastActivityDate, p.TotalTimeSeconds, p.CreatedAt, p.LastLoginAt)
	if err != nil {
		log.Error("failed to create player: %v", err)
		return err
	}
	log.Debug("player created: id=%s", p.ID)
	return nil
}

func (r *playerRepository) Get(ctx context.Context, id string) (*models.Player, error) {
	log := logger.FromContext(ctx).WithPrefix("player_repo")
	log.Debug("getting player: id=%s", id)

	return r.scanPlayer(ctx, `
SELECT id, username, password_hash, current_level, total_xp, total_coins, learning_streak, last_activity_date, total_time_seconds, created_at, last_login_at
FROM players
WHERE id = ?
`, id)
}

func (r *playerRepository) GetByUsername(ctx context.Context, username string) (*models.Player, error) {
	log := logger.FromContext(ctx).WithPrefix("player_repo")
	log.Debug("getting player: username=%s", username)

	return r.scanPlayer(ctx, `
SELECT id, username, password_hash, current_level, total_xp, total_coins, learning_streak, last_activity_date, total_time_seconds, created_at, last_login_at
FROM players
WHERE username = ?
`, username)
}

func (r *playerRepository) scanPlayer(ctx context.Context, query string, arg any) (*models.Player, error) {
	log := logger.FromContext(ctx).WithPrefix("player_repo")

	p := &models.Player{
		CompletedLevels:  make(map[int]bool),
		LevelStars:       make(map[int]int),
		LevelAttempts:    make(map[int]int),
		Achievements:     make(map[string]time.Time),
		PurchasedRewards: make(map[string]bool),
	}
	var lastActivity sql.NullTime
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&p.ID, &p.Username, &p.PasswordHash, &p.CurrentLevel, &p.TotalXP, &p.TotalCoins,
		&p.LearningStreak, &lastActivity, &p.TotalTimeSeconds, &p.CreatedAt, &p.LastLoginAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("player not found")
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get player: %v", err)
		return nil, err
	}
	if lastActivity.Valid {
		t := lastActivity.Time
		p.LastActivityDate = &t
	}
	return p, nil
}

func (r *playerRepository) Save(ctx context.Context, p *models.Player) error {
	log := logger.FromContext(ctx).WithPrefix("player_repo")
	log.Debug("saving player: id=%s, xp=%d, coins=%d, streak=%d", p.ID, p.TotalXP, p.TotalCoins, p.LearningStreak)

	_, err := r.db.ExecContext(ctx, `
UPDATE players
SET current_level = ?, total_xp = ?, total_coins = ?, learning_streak = ?, last_activity_date = ?, total_time_seconds = ?, last_login_at = ?
WHERE id = ?
`, p.CurrentLevel, p.TotalXP, p.TotalCoins, p.LearningStreak, p.LastActivityDate, p.TotalTimeSeconds, p.LastLoginAt, p.ID)
	if err != nil {
		log.Error("failed to save player: %v", err)
	}
	return err
}

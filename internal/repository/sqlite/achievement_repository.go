package sqlite

import (
	"context"
	"database/sql"
	"time"

	"codequest/internal/logger"
	"codequest/internal/repository"
)

type achievementRepository struct {
	db *sql.DB
}

// NewAchievementRepository creates a new AchievementRepository implementation
func NewAchievementRepository(db *sql.DB) repository.AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) Earned(ctx context.Context, playerID string) (map[string]time.Time, error) {
	log := logger.FromContext(ctx).WithPrefix("achievement_repo")
	log.Debug("listing earned achievements: player=%s", playerID)

	rows, err := r.db.QueryContext(ctx, `
SELECT achievement_id, earned_at FROM player_achievements WHERE player_id = ?
`, playerID)
	if err != nil {
		log.Error("failed to list achievements: %v", err)
		return nil, err
	}
	defer rows.Close()

	earned := make(map[string]time.Time)
	for rows.Next() {
		var id string
		var at time.Time
		if err := rows.Scan(&id, &at); err != nil {
			log.Error("failed to scan achievement: %v", err)
			return nil, err
		}
		earned[id] = at
	}
	if err := rows.Err(); err != nil {
		log.Error("achievement rows error: %v", err)
		return nil, err
	}
	return earned, nil
}

func (r *achievementRepository) Award(ctx context.Context, playerID, achievementID string, earnedAt time.Time) error {
	log := logger.FromContext(ctx).WithPrefix("achievement_repo")
	log.Debug("awarding achievement: player=%s, achievement=%s", playerID, achievementID)

	_, err := r.db.ExecContext(ctx, `
INSERT OR IGNORE INTO player_achievements (player_id, achievement_id, earned_at)
VALUES (?, ?, ?)
`, playerID, achievementID, earnedAt)
	if err != nil {
		log.Error("failed to award achievement: %v", err)
	}
	return err
}

package sqlite

import (
	"context"
	"database/sql"

	"codequest/internal/logger"
	"codequest/internal/models"
	"codequest/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

// RefreshLeaderboard recomputes one player's cached row from the source
// tables. Levels completed counts distinct passed levels; average score is
// taken over all attempts so retries count against it.
func (r *statsRepository) RefreshLeaderboard(ctx context.Context, playerID string) error {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("refreshing leaderboard row: player=%s", playerID)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO leaderboard_stats (player_id, username, total_xp, levels_completed, achievements, learning_streak, average_score, refreshed_at)
SELECT
    p.id,
    p.username,
    p.total_xp,
    (SELECT COUNT(DISTINCT a.level_id) FROM attempts a WHERE a.player_id = p.id AND a.passed = 1),
    (SELECT COUNT(*) FROM player_achievements pa WHERE pa.player_id = p.id),
    p.learning_streak,
    COALESCE((SELECT AVG(a.score_percentage) FROM attempts a WHERE a.player_id = p.id), 0),
    CURRENT_TIMESTAMP
FROM players p
WHERE p.id = ?
ON CONFLICT(player_id) DO UPDATE SET
    username = excluded.username,
    total_xp = excluded.total_xp,
    levels_completed = excluded.levels_completed,
    achievements = excluded.achievements,
    learning_streak = excluded.learning_streak,
    average_score = excluded.average_score,
    refreshed_at = excluded.refreshed_at
`, playerID)
	if err != nil {
		log.Error("failed to refresh leaderboard row: %v", err)
	}
	return err
}

func (r *statsRepository) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("querying leaderboard: limit=%d", limit)

	query, args, err := sqlBuilder.
		Select("username", "total_xp", "levels_completed", "achievements", "learning_streak", "average_score").
		From("leaderboard_stats").
		OrderBy("total_xp DESC", "levels_completed DESC", "username ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		log.Error("failed to build leaderboard query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query leaderboard: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.Username, &e.TotalXP, &e.LevelsCompleted, &e.Achievements, &e.LearningStreak, &e.AverageScore); err != nil {
			log.Error("failed to scan leaderboard entry: %v", err)
			return nil, err
		}
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		log.Error("leaderboard rows error: %v", err)
		return nil, err
	}
	return entries, nil
}

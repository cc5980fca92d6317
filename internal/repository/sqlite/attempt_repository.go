package sqlite

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"codequest/internal/logger"
	"codequest/internal/models"
	"codequest/internal/repository"
)

var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type attemptRepository struct {
	db *sql.DB
}

// NewAttemptRepository creates a new AttemptRepository implementation
func NewAttemptRepository(db *sql.DB) repository.AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Insert(ctx context.Context, a models.Attempt) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("attempt_repo")
	log.Debug("inserting attempt: player=%s, level=%d, score=%.1f, passed=%t", a.PlayerID, a.LevelID, a.ScorePercentage, a.Passed)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO attempts (player_id, level_id, level_kind, score_percentage, correct_count, total_questions, passed, stars_earned, time_taken_seconds, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, a.PlayerID, a.LevelID, string(a.LevelKind), a.ScorePercentage, a.CorrectCount, a.TotalQuestions, a.Passed, a.StarsEarned, a.TimeTakenSeconds, a.CreatedAt)
	if err != nil {
		log.Error("failed to insert attempt: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *attemptRepository) List(ctx context.Context, filter models.AttemptFilter) ([]models.Attempt, error) {
	log := logger.FromContext(ctx).WithPrefix("attempt_repo")
	log.Debug("listing attempts: player=%s, level=%d", filter.PlayerID, filter.LevelID)

	builder := sqlBuilder.
		Select("id", "player_id", "level_id", "level_kind", "score_percentage",
			"correct_count", "total_questions", "passed", "stars_earned",
			"time_taken_seconds", "created_at").
		From("attempts")

	if filter.PlayerID != "" {
		builder = builder.Where(sq.Eq{"player_id": filter.PlayerID})
	}
	if filter.LevelID > 0 {
		builder = builder.Where(sq.Eq{"level_id": filter.LevelID})
	}
	if filter.PassedOnly {
		builder = builder.Where(sq.Eq{"passed": true})
	}

	dir := "ASC"
	if strings.EqualFold(filter.OrderDir, "DESC") {
		dir = "DESC"
	}
	builder = builder.OrderBy("created_at " + dir).OrderBy("id " + dir)

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Error("failed to build attempts query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list attempts: %v", err)
		return nil, err
	}
	defer rows.Close()

	var attempts []models.Attempt
	for rows.Next() {
		var a models.Attempt
		var kind string
		if err := rows.Scan(&a.ID, &a.PlayerID, &a.LevelID, &kind, &a.ScorePercentage,
			&a.CorrectCount, &a.TotalQuestions, &a.Passed, &a.StarsEarned,
			&a.TimeTakenSeconds, &a.CreatedAt); err != nil {
			log.Error("failed to scan attempt: %v", err)
			return nil, err
		}
		a.LevelKind = models.LevelKind(kind)
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		log.Error("attempt rows error: %v", err)
		return nil, err
	}
	log.Debug("found %d attempts", len(attempts))
	return attempts, nil
}

func (r *attemptRepository) CountForLevel(ctx context.Context, playerID string, levelID int) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("attempt_repo")
	log.Debug("counting attempts: player=%s, level=%d", playerID, levelID)

	var count int
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM attempts WHERE player_id = ? AND level_id = ?
`, playerID, levelID).Scan(&count)
	if err != nil {
		log.Error("failed to count attempts: %v", err)
		return 0, err
	}
	return count, nil
}

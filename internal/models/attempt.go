package models

import "time"

// Attempt is one record of the append-only performance history. Completed
// levels, stars and attempt counts are all derived from these rows; the
// attempts table is the source of truth.
type Attempt struct {
	ID               int64     `json:"id"`
	PlayerID         string    `json:"player_id"`
	LevelID          int       `json:"level_id"`
	LevelKind        LevelKind `json:"level_kind"`
	ScorePercentage  float64   `json:"score_percentage"`
	CorrectCount     int       `json:"correct_count"`
	TotalQuestions   int       `json:"total_questions"`
	Passed           bool      `json:"passed"`
	StarsEarned      int       `json:"stars_earned"`
	TimeTakenSeconds int       `json:"time_taken_seconds"`
	CreatedAt        time.Time `json:"created_at"`
}

// AttemptFilter narrows attempt history queries.
type AttemptFilter struct {
	PlayerID   string
	LevelID    int
	PassedOnly bool
	Limit      int
	Offset     int
	OrderDir   string
}

// SubmitResult is the bundle returned from a graded submission.
type SubmitResult struct {
	Passed            bool                `json:"passed"`
	ScorePercentage   float64             `json:"score_percentage"`
	CorrectCount      int                 `json:"correct_count"`
	TotalQuestions    int                 `json:"total_questions"`
	StarsEarned       int                 `json:"stars_earned"`
	CoinsEarned       int                 `json:"coins_earned"`
	XPEarned          int                 `json:"xp_earned"`
	TestBonus         bool                `json:"test_bonus"`
	NewAchievements   []EarnedAchievement `json:"new_achievements"`
	NextLevelUnlocked bool                `json:"next_level_unlocked"`
	RetryAvailable    bool                `json:"retry_available"`
	Results           []QuestionResult    `json:"results"`
	// Durable is false when the attempt was graded but persisting it
	// failed; the caller is told the result may not have been saved.
	Durable bool `json:"durable"`
}

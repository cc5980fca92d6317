package models

import "time"

// Player is the canonical mutable record for one user. The fields under
// "derived" are rebuilt from the append-only attempts log on every load so the
// stored counters can never drift from the history.
type Player struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"`
	CurrentLevel   int       `json:"current_level"`
	TotalXP        int       `json:"total_xp"`
	TotalCoins     int       `json:"total_coins"`
	LearningStreak int       `json:"learning_streak"`
	// LastActivityDate is the calendar day of the most recent attempt,
	// used by the streak rules. Nil for a player who never attempted.
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
	TotalTimeSeconds int        `json:"total_time_seconds"`
	CreatedAt        time.Time  `json:"created_at"`
	LastLoginAt      time.Time  `json:"last_login_at"`

	// Derived from the attempts log.
	CompletedLevels map[int]bool `json:"-"`
	LevelStars      map[int]int  `json:"-"`
	LevelAttempts   map[int]int  `json:"-"`
	AverageScore    float64      `json:"average_score"`
	PerfectScores   int          `json:"perfect_scores"`

	// Achievements maps earned achievement id to the time it was earned.
	Achievements map[string]time.Time `json:"-"`
	// PurchasedRewards is the set of shop reward ids the player owns.
	PurchasedRewards map[string]bool `json:"-"`
}

// NewPlayer returns a Player with every collection initialized, so callers
// never need to probe for nil maps.
func NewPlayer(id, username, passwordHash string, now time.Time) *Player {
	return &Player{
		ID:               id,
		Username:         username,
		PasswordHash:     passwordHash,
		CurrentLevel:     1,
		CreatedAt:        now,
		LastLoginAt:      now,
		CompletedLevels:  make(map[int]bool),
		LevelStars:       make(map[int]int),
		LevelAttempts:    make(map[int]int),
		Achievements:     make(map[string]time.Time),
		PurchasedRewards: make(map[string]bool),
	}
}

// HasCompleted reports whether the player has passed the given level.
func (p *Player) HasCompleted(levelID int) bool {
	return p.CompletedLevels[levelID]
}

// Stars returns the best stars ever earned on a level.
func (p *Player) Stars(levelID int) int {
	return p.LevelStars[levelID]
}

// Attempts returns the number of recorded attempts on a level.
func (p *Player) Attempts(levelID int) int {
	return p.LevelAttempts[levelID]
}

// PlayerOverview is the dashboard summary for one player.
type PlayerOverview struct {
	Username             string  `json:"username"`
	CurrentLevel         int     `json:"current_level"`
	TotalXP              int     `json:"total_xp"`
	TotalCoins           int     `json:"total_coins"`
	LearningStreak       int     `json:"learning_streak"`
	LevelsCompleted      int     `json:"levels_completed"`
	TotalLevels          int     `json:"total_levels"`
	CompletionPercentage float64 `json:"completion_percentage"`
	TotalStars           int     `json:"total_stars"`
	MaxStars             int     `json:"max_stars"`
	StarPercentage       float64 `json:"star_percentage"`
	AverageScore         float64 `json:"average_score"`
	PerfectScores        int     `json:"perfect_scores"`
	AchievementsUnlocked int     `json:"achievements_unlocked"`
	TotalAchievements    int     `json:"total_achievements"`
	RewardsPurchased     int     `json:"rewards_purchased"`
}

// LeaderboardEntry is one row of the XP leaderboard.
type LeaderboardEntry struct {
	Rank            int     `json:"rank"`
	Username        string  `json:"username"`
	TotalXP         int     `json:"total_xp"`
	LevelsCompleted int     `json:"levels_completed"`
	Achievements    int     `json:"achievements"`
	LearningStreak  int     `json:"learning_streak"`
	AverageScore    float64 `json:"average_score"`
}

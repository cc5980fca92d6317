package engine

import (
	"time"

	apperrors "codequest/internal/errors"
	"codequest/internal/models"
)

// Star tiers for a passing score. A score below the one-star bar earns
// nothing even if the level's own passing bar is lower.
const (
	threeStarScore = 95
	twoStarScore   = 85
	oneStarScore   = 70
)

// Bonus granted on top of normal rewards for passing a test-kind level.
const (
	TestBonusCoins = 200
	TestBonusXP    = 100
)

// DefaultMaxRetries caps attempts per level unless configured otherwise.
const DefaultMaxRetries = 3

// Rules carries the configurable knobs of the progression state machine.
type Rules struct {
	MaxRetries int
}

// NewRules returns Rules with defaults applied.
func NewRules(maxRetries int) Rules {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return Rules{MaxRetries: maxRetries}
}

// IsAvailable reports whether a level is unlocked for the player: level 1
// always is, otherwise every prerequisite must be completed. Levels without
// explicit prerequisites fall back to sequential unlocking.
func IsAvailable(level models.Level, player *models.Player) bool {
	if level.ID == 1 {
		return true
	}
	if len(level.Prerequisites) > 0 {
		for _, p := range level.Prerequisites {
			if !player.HasCompleted(p) {
				return false
			}
		}
		return true
	}
	return player.HasCompleted(level.ID - 1)
}

// CanAttempt gates a new attempt: the level must be unlocked and the retry
// cap must not be exhausted. Both rejections are expected outcomes returned
// as typed errors, never scored.
func (r Rules) CanAttempt(level models.Level, player *models.Player) error {
	if !IsAvailable(level, player) {
		return apperrors.NewLevelLockedError(level.ID)
	}
	if player.Attempts(level.ID) >= r.MaxRetries {
		return apperrors.NewRetryLimitError(level.ID, r.MaxRetries)
	}
	return nil
}

// StarsForScore maps a score percentage to 0-3 stars.
func StarsForScore(score float64) int {
	switch {
	case score >= threeStarScore:
		return 3
	case score >= twoStarScore:
		return 2
	case score >= oneStarScore:
		return 1
	default:
		return 0
	}
}

// Outcome is the progression verdict for one graded attempt.
type Outcome struct {
	Passed      bool
	Stars       int
	CoinsEarned int
	XPEarned    int
	TestBonus   bool
}

// EvaluateAttempt turns a score into a pass/fail verdict with rewards.
// Rewards scale multiplicatively with stars; passing a test-kind level adds
// a fixed bonus on top.
func EvaluateAttempt(level models.Level, score *models.ScoreResult) Outcome {
	if score.ScorePercentage < level.PassingScore {
		return Outcome{}
	}

	stars := StarsForScore(score.ScorePercentage)
	out := Outcome{
		Passed:      true,
		Stars:       stars,
		CoinsEarned: level.Rewards.Coins * stars,
		XPEarned:    level.Rewards.XP * stars,
	}
	if level.Kind == models.LevelTest {
		out.TestBonus = true
		out.CoinsEarned += TestBonusCoins
		out.XPEarned += TestBonusXP
	}
	return out
}

// Apply records an attempt's outcome on the in-memory player: the attempt
// count rises either way; a pass additionally completes the level
// (idempotently), max-merges stars, credits rewards and advances the
// frontier when the passed level was exactly the player's current one.
func Apply(player *models.Player, level models.Level, out Outcome, now time.Time) {
	player.LevelAttempts[level.ID]++
	UpdateStreak(player, now)

	if !out.Passed {
		return
	}

	player.CompletedLevels[level.ID] = true
	if out.Stars > player.LevelStars[level.ID] {
		player.LevelStars[level.ID] = out.Stars
	}
	player.TotalCoins += out.CoinsEarned
	player.TotalXP += out.XPEarned
	if level.ID == player.CurrentLevel {
		player.CurrentLevel++
	}
}

package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codequest/internal/engine"
	apperrors "codequest/internal/errors"
	"codequest/internal/models"
)

func newTestPlayer() *models.Player {
	return models.NewPlayer("p1", "gopher", "hash", time.Now())
}

func TestIsAvailable_LevelOneAlwaysUnlocked(t *testing.T) {
	player := newTestPlayer()
	level := models.Level{ID: 1, Prerequisites: nil}

	assert.True(t, engine.IsAvailable(level, player))
}

func TestIsAvailable_PrerequisitesGate(t *testing.T) {
	player := newTestPlayer()
	level := models.Level{ID: 10, Prerequisites: []int{5, 6, 7, 8, 9}}

	assert.False(t, engine.IsAvailable(level, player))

	for _, id := range []int{5, 6, 7, 8} {
		player.CompletedLevels[id] = true
	}
	assert.False(t, engine.IsAvailable(level, player), "one missing prerequisite keeps the level locked")

	player.CompletedLevels[9] = true
	assert.True(t, engine.IsAvailable(level, player))
}

func TestIsAvailable_SequentialFallback(t *testing.T) {
	player := newTestPlayer()
	level := models.Level{ID: 3}

	assert.False(t, engine.IsAvailable(level, player))
	player.CompletedLevels[2] = true
	assert.True(t, engine.IsAvailable(level, player))
}

func TestCanAttempt_Locked(t *testing.T) {
	rules := engine.NewRules(3)
	player := newTestPlayer()
	level := models.Level{ID: 4, Prerequisites: []int{3}}

	err := rules.CanAttempt(level, player)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LEVEL_LOCKED", appErr.Code)
}

func TestCanAttempt_RetryLimit(t *testing.T) {
	rules := engine.NewRules(3)
	player := newTestPlayer()
	level := models.Level{ID: 1}

	player.LevelAttempts[1] = 2
	assert.NoError(t, rules.CanAttempt(level, player))

	player.LevelAttempts[1] = 3
	err := rules.CanAttempt(level, player)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "RETRY_LIMIT_EXCEEDED", appErr.Code)
}

func TestNewRules_DefaultRetries(t *testing.T) {
	assert.Equal(t, engine.DefaultMaxRetries, engine.NewRules(0).MaxRetries)
	assert.Equal(t, 5, engine.NewRules(5).MaxRetries)
}

func TestStarsForScore(t *testing.T) {
	assert.Equal(t, 3, engine.StarsForScore(100))
	assert.Equal(t, 3, engine.StarsForScore(95))
	assert.Equal(t, 2, engine.StarsForScore(94.9))
	assert.Equal(t, 2, engine.StarsForScore(85))
	assert.Equal(t, 1, engine.StarsForScore(84.9))
	assert.Equal(t, 1, engine.StarsForScore(70))
	assert.Equal(t, 0, engine.StarsForScore(69.9))
	assert.Equal(t, 0, engine.StarsForScore(0))
}

func TestEvaluateAttempt_FailedScore(t *testing.T) {
	level := models.Level{ID: 1, PassingScore: 70, Rewards: models.Rewards{Coins: 20, XP: 50}}
	score := &models.ScoreResult{ScorePercentage: 50}

	out := engine.EvaluateAttempt(level, score)
	assert.False(t, out.Passed)
	assert.Zero(t, out.Stars)
	assert.Zero(t, out.CoinsEarned)
	assert.Zero(t, out.XPEarned)
}

func TestEvaluateAttempt_RewardsScaleWithStars(t *testing.T) {
	level := models.Level{ID: 1, PassingScore: 70, Rewards: models.Rewards{Coins: 20, XP: 50}}

	one := engine.EvaluateAttempt(level, &models.ScoreResult{ScorePercentage: 75})
	assert.Equal(t, 1, one.Stars)
	assert.Equal(t, 20, one.CoinsEarned)
	assert.Equal(t, 50, one.XPEarned)

	three := engine.EvaluateAttempt(level, &models.ScoreResult{ScorePercentage: 100})
	assert.Equal(t, 3, three.Stars)
	assert.Equal(t, 60, three.CoinsEarned)
	assert.Equal(t, 150, three.XPEarned)
}

func TestEvaluateAttempt_TestBonus(t *testing.T) {
	level := models.Level{
		ID:           10,
		Kind:         models.LevelTest,
		PassingScore: 80,
		Rewards:      models.Rewards{Coins: 40, XP: 150},
	}

	out := engine.EvaluateAttempt(level, &models.ScoreResult{ScorePercentage: 100})
	assert.True(t, out.TestBonus)
	assert.Equal(t, 40*3+engine.TestBonusCoins, out.CoinsEarned)
	assert.Equal(t, 150*3+engine.TestBonusXP, out.XPEarned)
}

func TestEvaluateAttempt_TestBelowStricterBar(t *testing.T) {
	level := models.Level{
		ID:           10,
		Kind:         models.LevelTest,
		PassingScore: 80,
		Rewards:      models.Rewards{Coins: 40, XP: 150},
	}

	out := engine.EvaluateAttempt(level, &models.ScoreResult{ScorePercentage: 75})
	assert.False(t, out.Passed, "75 passes a lesson but not a test")
}

func TestApply_PassAdvancesFrontier(t *testing.T) {
	player := newTestPlayer()
	level := models.Level{ID: 1, PassingScore: 70, Rewards: models.Rewards{Coins: 20, XP: 50}}
	out := engine.Outcome{Passed: true, Stars: 3, CoinsEarned: 60, XPEarned: 150}

	engine.Apply(player, level, out, time.Now())

	assert.True(t, player.HasCompleted(1))
	assert.Equal(t, 3, player.Stars(1))
	assert.Equal(t, 1, player.Attempts(1))
	assert.Equal(t, 60, player.TotalCoins)
	assert.Equal(t, 150, player.TotalXP)
	assert.Equal(t, 2, player.CurrentLevel)
}

func TestApply_FailCountsAttemptOnly(t *testing.T) {
	player := newTestPlayer()
	level := models.Level{ID: 1, PassingScore: 70}

	engine.Apply(player, level, engine.Outcome{}, time.Now())

	assert.False(t, player.HasCompleted(1))
	assert.Equal(t, 1, player.Attempts(1))
	assert.Equal(t, 1, player.CurrentLevel)
	assert.Zero(t, player.TotalCoins)
}

func TestApply_StarsOnlyImprove(t *testing.T) {
	player := newTestPlayer()
	level := models.Level{ID: 1, PassingScore: 70}
	now := time.Now()

	engine.Apply(player, level, engine.Outcome{Passed: true, Stars: 3}, now)
	engine.Apply(player, level, engine.Outcome{Passed: true, Stars: 1}, now)

	assert.Equal(t, 3, player.Stars(1), "a worse retry must not lower recorded stars")
	assert.Equal(t, 2, player.Attempts(1))
}

func TestApply_ReplayDoesNotReAdvanceFrontier(t *testing.T) {
	player := newTestPlayer()
	player.CurrentLevel = 5
	level := models.Level{ID: 2, PassingScore: 70}

	engine.Apply(player, level, engine.Outcome{Passed: true, Stars: 2}, time.Now())

	assert.Equal(t, 5, player.CurrentLevel, "replaying an old level must not move the frontier")
}

package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"codequest/internal/engine"
	"codequest/internal/models"
)

func TestUpdateStreak_FirstActivity(t *testing.T) {
	player := newTestPlayer()

	engine.UpdateStreak(player, time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC))

	assert.Equal(t, 1, player.LearningStreak)
	assert.NotNil(t, player.LastActivityDate)
}

func TestUpdateStreak_NextDayExtends(t *testing.T) {
	player := newTestPlayer()

	engine.UpdateStreak(player, time.Date(2026, 3, 10, 23, 50, 0, 0, time.UTC))
	engine.UpdateStreak(player, time.Date(2026, 3, 11, 0, 5, 0, 0, time.UTC))

	assert.Equal(t, 2, player.LearningStreak, "crossing midnight counts as the next day")
}

func TestUpdateStreak_SameDayNoOp(t *testing.T) {
	player := newTestPlayer()

	engine.UpdateStreak(player, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	engine.UpdateStreak(player, time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC))

	assert.Equal(t, 1, player.LearningStreak)
}

func TestUpdateStreak_GapResets(t *testing.T) {
	player := newTestPlayer()

	engine.UpdateStreak(player, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	engine.UpdateStreak(player, time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC))
	engine.UpdateStreak(player, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, 1, player.LearningStreak, "a missed day resets the streak")
}

func TestBuildDerived_RebuildsFromLog(t *testing.T) {
	player := newTestPlayer()
	// Stale derived state that the log does not support.
	player.CompletedLevels[99] = true
	player.LevelStars[99] = 3

	attempts := []models.Attempt{
		{LevelID: 1, ScorePercentage: 60, Passed: false, TimeTakenSeconds: 100},
		{LevelID: 1, ScorePercentage: 100, Passed: true, TimeTakenSeconds: 80},
		{LevelID: 2, ScorePercentage: 80, Passed: true, TimeTakenSeconds: 200},
	}
	engine.BuildDerived(player, attempts)

	assert.False(t, player.HasCompleted(99), "state not backed by the log must vanish")
	assert.True(t, player.HasCompleted(1))
	assert.True(t, player.HasCompleted(2))
	assert.Equal(t, 2, player.Attempts(1))
	assert.Equal(t, 3, player.Stars(1), "stars come from the best passing score")
	assert.Equal(t, 1, player.Stars(2))
	assert.Equal(t, 1, player.PerfectScores)
	assert.Equal(t, 380, player.TotalTimeSeconds)
	assert.InDelta(t, 80.0, player.AverageScore, 0.001)
}

func TestBuildDerived_EmptyLog(t *testing.T) {
	player := newTestPlayer()
	player.CompletedLevels[1] = true

	engine.BuildDerived(player, nil)

	assert.Empty(t, player.CompletedLevels)
	assert.Zero(t, player.AverageScore)
}

func TestBuildStats_Counters(t *testing.T) {
	player := newTestPlayer()
	player.LearningStreak = 4

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	attempts := []models.Attempt{
		{LevelID: 1, ScorePercentage: 100, Passed: true, TimeTakenSeconds: 90, CreatedAt: day.Add(14 * time.Hour)},
		{LevelID: 25, LevelKind: models.LevelChallenge, ScorePercentage: 80, Passed: true, TimeTakenSeconds: 300, CreatedAt: day.Add(23 * time.Hour)},
		{LevelID: 2, ScorePercentage: 50, Passed: false, TimeTakenSeconds: 30, CreatedAt: day.Add(3 * time.Hour)},
	}
	engine.BuildDerived(player, attempts)
	stats := engine.BuildStats(player, attempts)

	assert.Equal(t, 2, stats.LevelsCompleted)
	assert.Equal(t, 1, stats.PerfectScores)
	assert.Equal(t, 4, stats.LearningStreak)
	assert.Equal(t, 1, stats.FastCompletions, "only passing attempts under the bar count as fast")
	assert.Equal(t, 1, stats.ChallengeLevelsCompleted)
	assert.Equal(t, 2, stats.NightCompletions, "23:00 and 03:00 both count as night")
	assert.InDelta(t, float64(90+300+30)/3600, stats.TotalTimeHours, 0.001)
}

func TestBuildStats_TimeCountsAttemptsNotYetOnPlayer(t *testing.T) {
	player := newTestPlayer()
	attempts := []models.Attempt{
		{LevelID: 1, ScorePercentage: 80, Passed: true, TimeTakenSeconds: 3600},
		{LevelID: 2, ScorePercentage: 80, Passed: true, TimeTakenSeconds: 3600},
	}

	// No BuildDerived here: the player counter is stale on purpose. The latest
	// attempt is handed in alongside the player and must still be counted.
	stats := engine.BuildStats(player, attempts)

	assert.InDelta(t, 2.0, stats.TotalTimeHours, 0.001)
}

func TestBuildStats_ChallengeCountedOncePerLevel(t *testing.T) {
	player := newTestPlayer()
	attempts := []models.Attempt{
		{LevelID: 25, LevelKind: models.LevelChallenge, ScorePercentage: 80, Passed: true},
		{LevelID: 25, LevelKind: models.LevelChallenge, ScorePercentage: 95, Passed: true},
	}
	engine.BuildDerived(player, attempts)
	stats := engine.BuildStats(player, attempts)

	assert.Equal(t, 1, stats.ChallengeLevelsCompleted)
}

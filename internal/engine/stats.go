package engine

import (
	"time"

	"codequest/internal/models"
)

// Completions faster than this count toward the speed achievement.
const fastCompletionSeconds = 120

// BuildDerived rebuilds every derived player field from the append-only
// attempts log. Stored counters are never trusted; the log is the source of
// truth, so a player loaded through here can never drift from its history.
func BuildDerived(player *models.Player, attempts []models.Attempt) {
	player.CompletedLevels = make(map[int]bool)
	player.LevelStars = make(map[int]int)
	player.LevelAttempts = make(map[int]int)
	player.AverageScore = 0
	player.PerfectScores = 0
	player.TotalTimeSeconds = 0

	if len(attempts) == 0 {
		return
	}

	var scoreSum float64
	bestPassing := make(map[int]float64)

	for _, a := range attempts {
		player.LevelAttempts[a.LevelID]++
		scoreSum += a.ScorePercentage
		player.TotalTimeSeconds += a.TimeTakenSeconds
		if a.ScorePercentage == 100 {
			player.PerfectScores++
		}
		if a.Passed {
			player.CompletedLevels[a.LevelID] = true
			if a.ScorePercentage > bestPassing[a.LevelID] {
				bestPassing[a.LevelID] = a.ScorePercentage
			}
		}
	}

	player.AverageScore = scoreSum / float64(len(attempts))
	for levelID, best := range bestPassing {
		player.LevelStars[levelID] = StarsForScore(best)
	}
}

// BuildStats computes the aggregate snapshot achievement conditions are
// evaluated against.
func BuildStats(player *models.Player, attempts []models.Attempt) models.PlayerStats {
	stats := models.PlayerStats{
		LevelsCompleted: len(player.CompletedLevels),
		LearningStreak:  player.LearningStreak,
	}

	// Time comes from the attempts slice, not the player counter, so an
	// attempt handed in alongside the player is counted the moment it lands.
	var totalSeconds int
	challengesDone := make(map[int]bool)
	for _, a := range attempts {
		totalSeconds += a.TimeTakenSeconds
		if a.ScorePercentage == 100 {
			stats.PerfectScores++
		}
		if a.Passed && a.TimeTakenSeconds > 0 && a.TimeTakenSeconds < fastCompletionSeconds {
			stats.FastCompletions++
		}
		if a.Passed && a.LevelKind == models.LevelChallenge {
			challengesDone[a.LevelID] = true
		}

		hour := a.CreatedAt.Hour()
		if hour >= 22 || hour < 6 {
			stats.NightCompletions++
		} else if hour < 7 {
			stats.EarlyCompletions++
		}
	}
	stats.ChallengeLevelsCompleted = len(challengesDone)
	stats.TotalTimeHours = float64(totalSeconds) / 3600

	return stats
}

// UpdateStreak applies the consecutive-calendar-day rules: first activity
// starts the streak at 1, a next-day activity extends it, a same-day one is
// a no-op, and any longer gap resets it to 1.
func UpdateStreak(player *models.Player, now time.Time) {
	today := truncateToDay(now)

	if player.LastActivityDate == nil {
		player.LearningStreak = 1
		player.LastActivityDate = &today
		return
	}

	last := truncateToDay(*player.LastActivityDate)
	switch {
	case last.Equal(today):
		return
	case last.AddDate(0, 0, 1).Equal(today):
		player.LearningStreak++
	default:
		player.LearningStreak = 1
	}
	player.LastActivityDate = &today
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

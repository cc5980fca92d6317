package models

import "time"

// Tier is an achievement reward class.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// TierReward is the fixed grant for earning an achievement of a tier.
type TierReward struct {
	Coins int `json:"coins"`
	XP    int `json:"xp"`
}

// StatName names one aggregate player statistic that achievement conditions
// can reference.
type StatName string

const (
	StatLevelsCompleted          StatName = "levels_completed"
	StatPerfectScores            StatName = "perfect_scores"
	StatLearningStreak           StatName = "learning_streak"
	StatTotalTimeHours           StatName = "total_time_hours"
	StatFastCompletions          StatName = "fast_completions"
	StatChallengeLevelsCompleted StatName = "challenge_levels_completed"
	StatNightCompletions         StatName = "night_completions"
	StatEarlyCompletions         StatName = "early_completions"
)

// Comparator is the comparison operator of an achievement condition.
type Comparator string

const (
	CmpGTE Comparator = ">="
	CmpGT  Comparator = ">"
	CmpEQ  Comparator = "=="
	CmpLTE Comparator = "<="
	CmpLT  Comparator = "<"
)

// Condition is a typed predicate over a stats snapshot. Conditions are plain
// data so a misconfigured one can be skipped without aborting an evaluation
// pass, and nothing is ever interpreted as code.
type Condition struct {
	Stat      StatName   `json:"stat"`
	Op        Comparator `json:"op"`
	Threshold float64    `json:"threshold"`
}

// AchievementDef is an immutable catalog achievement definition.
type AchievementDef struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tier        Tier      `json:"tier"`
	Icon        string    `json:"icon"`
	Hidden      bool      `json:"hidden"`
	Condition   Condition `json:"condition"`
}

// EarnedAchievement is an achievement a player has unlocked, with the reward
// that was granted for it.
type EarnedAchievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tier        Tier      `json:"tier"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earned_at"`
	Reward      TierReward `json:"reward"`
}

// AchievementProgress is a player's progress toward one definition.
type AchievementProgress struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Tier               Tier       `json:"tier"`
	Icon               string     `json:"icon"`
	Earned             bool       `json:"earned"`
	EarnedAt           *time.Time `json:"earned_at,omitempty"`
	ProgressPercentage float64    `json:"progress_percentage"`
}

// PlayerStats is the aggregate snapshot achievement conditions are evaluated
// against. It is derived from the attempts log plus the streak counter.
type PlayerStats struct {
	LevelsCompleted          int     `json:"levels_completed"`
	PerfectScores            int     `json:"perfect_scores"`
	LearningStreak           int     `json:"learning_streak"`
	TotalTimeHours           float64 `json:"total_time_hours"`
	FastCompletions          int     `json:"fast_completions"`
	ChallengeLevelsCompleted int     `json:"challenge_levels_completed"`
	NightCompletions         int     `json:"night_completions"`
	EarlyCompletions         int     `json:"early_completions"`
}

// Value looks up a stat by name. The second return is false for a name the
// snapshot does not know, which callers treat as a content error.
func (s PlayerStats) Value(name StatName) (float64, bool) {
	switch name {
	case StatLevelsCompleted:
		return float64(s.LevelsCompleted), true
	case StatPerfectScores:
		return float64(s.PerfectScores), true
	case StatLearningStreak:
		return float64(s.LearningStreak), true
	case StatTotalTimeHours:
		return s.TotalTimeHours, true
	case StatFastCompletions:
		return float64(s.FastCompletions), true
	case StatChallengeLevelsCompleted:
		return float64(s.ChallengeLevelsCompleted), true
	case StatNightCompletions:
		return float64(s.NightCompletions), true
	case StatEarlyCompletions:
		return float64(s.EarlyCompletions), true
	default:
		return 0, false
	}
}

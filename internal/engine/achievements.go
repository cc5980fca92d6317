package engine

import (
	"fmt"
	"time"

	"codequest/internal/catalog"
	"codequest/internal/logger"
	"codequest/internal/models"
)

// AchievementEvaluator checks a definition table against stats snapshots.
type AchievementEvaluator struct {
	defs []models.AchievementDef
}

// NewAchievementEvaluator creates an evaluator over the given definitions.
func NewAchievementEvaluator(defs []models.AchievementDef) *AchievementEvaluator {
	return &AchievementEvaluator{defs: defs}
}

// CheckNew returns the achievements whose conditions hold and that the
// player has not earned yet. A definition with a malformed condition is
// skipped and logged; it never aborts the pass. Re-running after awarding
// returns nothing, since earned ids are excluded.
func (e *AchievementEvaluator) CheckNew(stats models.PlayerStats, earned map[string]time.Time, now time.Time) []models.EarnedAchievement {
	var unlocked []models.EarnedAchievement

	for _, def := range e.defs {
		if _, ok := earned[def.ID]; ok {
			continue
		}
		met, err := evalCondition(def.Condition, stats)
		if err != nil {
			logger.Warn("skipping achievement %s: %v", def.ID, err)
			continue
		}
		if !met {
			continue
		}
		unlocked = append(unlocked, models.EarnedAchievement{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Tier:        def.Tier,
			Icon:        def.Icon,
			EarnedAt:    now,
			Reward:      catalog.TierReward(def.Tier),
		})
	}

	return unlocked
}

// Award idempotently applies earned achievements to the player and returns
// the aggregate coin/xp grant. Ids the player already holds are ignored, so
// awarding the same evaluation twice cannot double-credit.
func Award(player *models.Player, unlocked []models.EarnedAchievement) models.TierReward {
	var total models.TierReward
	for _, a := range unlocked {
		if _, ok := player.Achievements[a.ID]; ok {
			continue
		}
		player.Achievements[a.ID] = a.EarnedAt
		player.TotalCoins += a.Reward.Coins
		player.TotalXP += a.Reward.XP
		total.Coins += a.Reward.Coins
		total.XP += a.Reward.XP
	}
	return total
}

// Progress reports per-definition progress toward each achievement. Hidden
// definitions only appear once earned.
func (e *AchievementEvaluator) Progress(stats models.PlayerStats, earned map[string]time.Time) []models.AchievementProgress {
	out := make([]models.AchievementProgress, 0, len(e.defs))

	for _, def := range e.defs {
		earnedAt, isEarned := earned[def.ID]
		if def.Hidden && !isEarned {
			continue
		}

		p := models.AchievementProgress{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Tier:        def.Tier,
			Icon:        def.Icon,
			Earned:      isEarned,
		}
		if isEarned {
			t := earnedAt
			p.EarnedAt = &t
			p.ProgressPercentage = 100
		} else {
			p.ProgressPercentage = progressPercentage(def.Condition, stats)
		}
		out = append(out, p)
	}

	return out
}

func evalCondition(c models.Condition, stats models.PlayerStats) (bool, error) {
	value, ok := stats.Value(c.Stat)
	if !ok {
		return false, fmt.Errorf("condition references unknown stat %q", c.Stat)
	}

	switch c.Op {
	case models.CmpGTE:
		return value >= c.Threshold, nil
	case models.CmpGT:
		return value > c.Threshold, nil
	case models.CmpEQ:
		return value == c.Threshold, nil
	case models.CmpLTE:
		return value <= c.Threshold, nil
	case models.CmpLT:
		return value < c.Threshold, nil
	default:
		return false, fmt.Errorf("condition has unknown operator %q", c.Op)
	}
}

func progressPercentage(c models.Condition, stats models.PlayerStats) float64 {
	value, ok := stats.Value(c.Stat)
	if !ok || c.Threshold <= 0 {
		return 0
	}
	// Only threshold-reaching conditions have a meaningful fraction.
	if c.Op != models.CmpGTE && c.Op != models.CmpGT {
		return 0
	}
	pct := value / c.Threshold * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

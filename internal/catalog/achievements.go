package catalog

import "codequest/internal/models"

// TierRewards maps each achievement tier to its fixed coin/xp grant.
var TierRewards = map[models.Tier]models.TierReward{
	models.TierBronze:   {Coins: 50, XP: 25},
	models.TierSilver:   {Coins: 100, XP: 50},
	models.TierGold:     {Coins: 200, XP: 100},
	models.TierPlatinum: {Coins: 500, XP: 250},
}

// TierReward returns the grant for a tier, falling back to bronze for an
// unknown one.
func TierReward(tier models.Tier) models.TierReward {
	if r, ok := TierRewards[tier]; ok {
		return r
	}
	return TierRewards[models.TierBronze]
}

func achievementDefs() []models.AchievementDef {
	return []models.AchievementDef{
		{
			ID:          "first_steps",
			Name:        "First Steps",
			Description: "Complete your first level",
			Tier:        models.TierBronze,
			Icon:        "🏁",
			Condition:   models.Condition{Stat: models.StatLevelsCompleted, Op: models.CmpGTE, Threshold: 1},
		},
		{
			ID:          "getting_started",
			Name:        "Getting Started",
			Description: "Complete 5 levels",
			Tier:        models.TierBronze,
			Icon:        "🚀",
			Condition:   models.Condition{Stat: models.StatLevelsCompleted, Op: models.CmpGTE, Threshold: 5},
		},
		{
			ID:          "go_enthusiast",
			Name:        "Go Enthusiast",
			Description: "Complete 10 levels",
			Tier:        models.TierSilver,
			Icon:        "🐹",
			Condition:   models.Condition{Stat: models.StatLevelsCompleted, Op: models.CmpGTE, Threshold: 10},
		},
		{
			ID:          "code_warrior",
			Name:        "Code Warrior",
			Description: "Complete 25 levels",
			Tier:        models.TierGold,
			Icon:        "⚔️",
			Condition:   models.Condition{Stat: models.StatLevelsCompleted, Op: models.CmpGTE, Threshold: 25},
		},
		{
			ID:          "go_master",
			Name:        "Go Master",
			Description: "Complete 50 levels",
			Tier:        models.TierPlatinum,
			Icon:        "👑",
			Condition:   models.Condition{Stat: models.StatLevelsCompleted, Op: models.CmpGTE, Threshold: 50},
		},
		{
			ID:          "perfectionist",
			Name:        "Perfectionist",
			Description: "Get a perfect score on any level",
			Tier:        models.TierSilver,
			Icon:        "💯",
			Condition:   models.Condition{Stat: models.StatPerfectScores, Op: models.CmpGTE, Threshold: 1},
		},
		{
			ID:          "streak_master",
			Name:        "Streak Master",
			Description: "Maintain a 7-day learning streak",
			Tier:        models.TierGold,
			Icon:        "🔥",
			Condition:   models.Condition{Stat: models.StatLearningStreak, Op: models.CmpGTE, Threshold: 7},
		},
		{
			ID:          "speed_demon",
			Name:        "Speed Demon",
			Description: "Complete a level in under 2 minutes",
			Tier:        models.TierSilver,
			Icon:        "⚡",
			Condition:   models.Condition{Stat: models.StatFastCompletions, Op: models.CmpGTE, Threshold: 1},
		},
		{
			ID:          "dedicated_learner",
			Name:        "Dedicated Learner",
			Description: "Spend over 10 hours learning",
			Tier:        models.TierGold,
			Icon:        "📚",
			Condition:   models.Condition{Stat: models.StatTotalTimeHours, Op: models.CmpGTE, Threshold: 10},
		},
		{
			ID:          "challenge_conqueror",
			Name:        "Challenge Conqueror",
			Description: "Complete all challenge levels",
			Tier:        models.TierPlatinum,
			Icon:        "🏆",
			Condition:   models.Condition{Stat: models.StatChallengeLevelsCompleted, Op: models.CmpGTE, Threshold: 4},
		},
		{
			ID:          "night_owl",
			Name:        "Night Owl",
			Description: "Complete levels after 10 PM",
			Tier:        models.TierBronze,
			Icon:        "🦉",
			Hidden:      true,
			Condition:   models.Condition{Stat: models.StatNightCompletions, Op: models.CmpGTE, Threshold: 5},
		},
		{
			ID:          "early_bird",
			Name:        "Early Bird",
			Description: "Complete levels before 7 AM",
			Tier:        models.TierBronze,
			Icon:        "🐦",
			Hidden:      true,
			Condition:   models.Condition{Stat: models.StatEarlyCompletions, Op: models.CmpGTE, Threshold: 5},
		},
	}
}

package catalog

import "codequest/internal/models"

func shopRewards() []models.ShopReward {
	return []models.ShopReward{
		{ID: "hint_pack", Name: "Hint Pack", Description: "Get 5 hints for difficult questions", Cost: 100, Kind: "consumable", Icon: "💡"},
		{ID: "time_bonus", Name: "Time Bonus", Description: "Get extra time for tests", Cost: 150, Kind: "consumable", Icon: "⏰"},
		{ID: "double_points", Name: "Double Points", Description: "Double points for the next level", Cost: 200, Kind: "buff", Icon: "⭐"},
		{ID: "theme_dark", Name: "Dark Theme", Description: "Sleek dark theme for nighttime learning", Cost: 250, Kind: "cosmetic", Icon: "🌙"},
		{ID: "skip_level", Name: "Level Skip", Description: "Skip one difficult level", Cost: 300, Kind: "consumable", Icon: "⏭️"},
		{ID: "badge_bronze", Name: "Bronze Badge", Description: "Bronze learner badge", Cost: 250, Kind: "badge", Icon: "🥉"},
		{ID: "badge_silver", Name: "Silver Badge", Description: "Silver learner badge", Cost: 400, Kind: "badge", Icon: "🥈"},
		{ID: "badge_gold", Name: "Gold Badge", Description: "Gold master badge", Cost: 600, Kind: "badge", Icon: "🥇"},
		{ID: "certificate", Name: "Certificate", Description: "Go proficiency certificate", Cost: 500, Kind: "achievement", Icon: "🏆"},
		{ID: "avatar_gopher", Name: "Gopher Avatar", Description: "Classic gopher avatar", Cost: 300, Kind: "avatar", Icon: "🐹"},
	}
}

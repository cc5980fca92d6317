package models

import "time"

// ShopReward is a purchasable item from the coin shop.
type ShopReward struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	Kind        string `json:"kind"`
	Icon        string `json:"icon"`
}

// ShopRewardView is a shop item annotated for one player.
type ShopRewardView struct {
	ShopReward
	Owned     bool `json:"owned"`
	CanAfford bool `json:"can_afford"`
}

// Purchase records one shop purchase.
type Purchase struct {
	PlayerID    string    `json:"player_id"`
	RewardID    string    `json:"reward_id"`
	PurchasedAt time.Time `json:"purchased_at"`
}

// PurchaseResult is the outcome of a successful purchase.
type PurchaseResult struct {
	Reward         ShopReward `json:"reward"`
	RemainingCoins int        `json:"remaining_coins"`
}

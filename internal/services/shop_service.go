package services

import (
	"context"
	"time"

	"codequest/internal/catalog"
	"codequest/internal/errors"
	"codequest/internal/logger"
	"codequest/internal/models"
	"codequest/internal/repository"
)

// ShopService handles the coin shop.
type ShopService interface {
	ListRewards(ctx context.Context, playerID string) ([]models.ShopRewardView, error)
	Purchase(ctx context.Context, playerID, rewardID string) (*models.PurchaseResult, error)
}

type shopService struct {
	catalog      *catalog.Catalog
	players      PlayerService
	playerRepo   repository.PlayerRepository
	purchaseRepo repository.PurchaseRepository

	// Purchases debit the same coin balance submissions credit, so they take
	// the same per-player lock.
	locks *PlayerLocks
}

// NewShopService creates a new ShopService
func NewShopService(
	cat *catalog.Catalog,
	players PlayerService,
	playerRepo repository.PlayerRepository,
	purchaseRepo repository.PurchaseRepository,
	locks *PlayerLocks,
) ShopService {
	return &shopService{
		catalog:      cat,
		players:      players,
		playerRepo:   playerRepo,
		purchaseRepo: purchaseRepo,
		locks:        locks,
	}
}

func (s *shopService) ListRewards(ctx context.Context, playerID string) ([]models.ShopRewardView, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing shop rewards: player=%s", playerID)

	player, err := s.players.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	rewards := s.catalog.ShopRewards()
	views := make([]models.ShopRewardView, 0, len(rewards))
	for _, r := range rewards {
		views = append(views, models.ShopRewardView{
			ShopReward: r,
			Owned:      player.PurchasedRewards[r.ID],
			CanAfford:  player.TotalCoins >= r.Cost,
		})
	}
	return views, nil
}

func (s *shopService) Purchase(ctx context.Context, playerID, rewardID string) (*models.PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("purchasing reward: player=%s, reward=%s", playerID, rewardID)

	reward, ok := s.catalog.ShopReward(rewardID)
	if !ok {
		return nil, errors.NewNotFoundError("reward", rewardID)
	}

	lock := s.locks.Get(playerID)
	lock.Lock()
	defer lock.Unlock()

	player, err := s.players.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.PurchasedRewards[rewardID] {
		return nil, errors.NewAlreadyOwnedError(rewardID)
	}
	if player.TotalCoins < reward.Cost {
		return nil, errors.NewInsufficientFundsError(reward.Cost, player.TotalCoins)
	}

	// Record ownership before the debit: a failed insert leaves the player
	// uncharged, and the purchase row is what AlreadyOwned checks against.
	if err := s.purchaseRepo.Insert(ctx, models.Purchase{
		PlayerID:    playerID,
		RewardID:    rewardID,
		PurchasedAt: time.Now(),
	}); err != nil {
		log.Error("failed to record purchase: %v", err)
		return nil, errors.NewInternalError(err)
	}
	player.TotalCoins -= reward.Cost
	if err := s.playerRepo.Save(ctx, player); err != nil {
		log.Error("failed to debit coins: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("reward purchased: player=%s, reward=%s, cost=%d", playerID, rewardID, reward.Cost)
	return &models.PurchaseResult{
		Reward:         reward,
		RemainingCoins: player.TotalCoins,
	}, nil
}

package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"codequest/internal/engine"
	"codequest/internal/errors"
	"codequest/internal/logger"
	"codequest/internal/models"
	"codequest/internal/repository"
)

// PlayerService handles account and player-state business logic
type PlayerService interface {
	Register(ctx context.Context, username, password string) (*models.Player, error)
	Authenticate(ctx context.Context, username, password string) (*models.Player, error)
	// GetPlayer loads the player with all derived state rebuilt from the
	// attempts log, plus earned achievements and owned rewards.
	GetPlayer(ctx context.Context, id string) (*models.Player, error)
}

type playerService struct {
	playerRepo      repository.PlayerRepository
	attemptRepo     repository.AttemptRepository
	achievementRepo repository.AchievementRepository
	purchaseRepo    repository.PurchaseRepository
}

// NewPlayerService creates a new PlayerService
func NewPlayerService(
	playerRepo repository.PlayerRepository,
	attemptRepo repository.AttemptRepository,
	achievementRepo repository.AchievementRepository,
	purchaseRepo repository.PurchaseRepository,
) PlayerService {
	return &playerService{
		playerRepo:      playerRepo,
		attemptRepo:     attemptRepo,
		achievementRepo: achievementRepo,
		purchaseRepo:    purchaseRepo,
	}
}

func (s *playerService) Register(ctx context.Context, username, password string) (*models.Player, error) {
	log := logger.FromContext(ctx)
	log.Debug("registering player: username=%s", username)

	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return nil, errors.NewValidationError("username", "must be at least 3 characters")
	}
	if len(password) < 6 {
		return nil, errors.NewValidationError("password", "must be at least 6 characters")
	}

	existing, err := s.playerRepo.GetByUsername(ctx, username)
	if err != nil {
		log.Error("failed to check username: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if existing != nil {
		return nil, errors.NewValidationError("username", "is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to hash password: %v", err)
		return nil, errors.NewInternalError(err)
	}

	player := models.NewPlayer(uuid.NewString(), username, string(hash), time.Now())
	if err := s.playerRepo.Create(ctx, player); err != nil {
		log.Error("failed to create player: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("player registered: id=%s, username=%s", player.ID, player.Username)
	return player, nil
}

func (s *playerService) Authenticate(ctx context.Context, username, password string) (*models.Player, error) {
	log := logger.FromContext(ctx)
	log.Debug("authenticating player: username=%s", username)

	player, err := s.playerRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		log.Error("failed to load player: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if player == nil {
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(password)); err != nil {
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	player.LastLoginAt = time.Now()
	if err := s.playerRepo.Save(ctx, player); err != nil {
		log.Warn("failed to record login time: %v", err)
	}

	return s.loadDerived(ctx, player)
}

func (s *playerService) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting player: id=%s", id)

	player, err := s.playerRepo.Get(ctx, id)
	if err != nil {
		log.Error("failed to get player: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if player == nil {
		return nil, errors.NewNotFoundError("player", id)
	}

	return s.loadDerived(ctx, player)
}

// loadDerived rebuilds the player's derived progress from the attempts log
// and attaches earned achievements and purchases.
func (s *playerService) loadDerived(ctx context.Context, player *models.Player) (*models.Player, error) {
	log := logger.FromContext(ctx)

	attempts, err := s.attemptRepo.List(ctx, models.AttemptFilter{PlayerID: player.ID})
	if err != nil {
		log.Error("failed to load attempts: %v", err)
		return nil, errors.NewInternalError(err)
	}
	engine.BuildDerived(player, attempts)

	earned, err := s.achievementRepo.Earned(ctx, player.ID)
	if err != nil {
		log.Error("failed to load achievements: %v", err)
		return nil, errors.NewInternalError(err)
	}
	player.Achievements = earned

	owned, err := s.purchaseRepo.ListByPlayer(ctx, player.ID)
	if err != nil {
		log.Error("failed to load purchases: %v", err)
		return nil, errors.NewInternalError(err)
	}
	player.PurchasedRewards = owned

	return player, nil
}

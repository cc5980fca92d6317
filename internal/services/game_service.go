package services

import (
	"context"
	"sort"
	"time"

	"codequest/internal/catalog"
	"codequest/internal/engine"
	"codequest/internal/errors"
	"codequest/internal/jobs"
	"codequest/internal/logger"
	"codequest/internal/models"
	"codequest/internal/repository"
)

// GameService handles level play: the level map, level views and graded
// submissions.
type GameService interface {
	GetLevelMap(ctx context.Context, playerID string) ([]models.LevelMapEntry, error)
	// GetLevel returns the player-facing view of one unlocked level.
	// Locked levels are an expected rejection, unknown ids a not-found.
	GetLevel(ctx context.Context, playerID string, levelID int) (*models.LevelView, error)
	SubmitAttempt(ctx context.Context, playerID string, levelID int, answers []models.Answer, timeTakenSeconds int) (*models.SubmitResult, error)
	RecommendedLevels(ctx context.Context, playerID string, limit int) ([]models.LevelMapEntry, error)
}

type gameService struct {
	catalog         *catalog.Catalog
	rules           engine.Rules
	evaluator       *engine.AchievementEvaluator
	players         PlayerService
	playerRepo      repository.PlayerRepository
	attemptRepo     repository.AttemptRepository
	achievementRepo repository.AchievementRepository
	jobQueue        jobs.JobQueue

	// Submissions for the same player are serialized so two concurrent
	// attempts cannot both read stale state and double-credit rewards.
	locks *PlayerLocks
}

// NewGameService creates a new GameService
func NewGameService(
	cat *catalog.Catalog,
	rules engine.Rules,
	players PlayerService,
	playerRepo repository.PlayerRepository,
	attemptRepo repository.AttemptRepository,
	achievementRepo repository.AchievementRepository,
	jobQueue jobs.JobQueue,
	locks *PlayerLocks,
) GameService {
	return &gameService{
		catalog:         cat,
		rules:           rules,
		evaluator:       engine.NewAchievementEvaluator(cat.Achievements()),
		players:         players,
		playerRepo:      playerRepo,
		attemptRepo:     attemptRepo,
		achievementRepo: achievementRepo,
		jobQueue:        jobQueue,
		locks:           locks,
	}
}

func (s *gameService) GetLevelMap(ctx context.Context, playerID string) ([]models.LevelMapEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug("building level map: player=%s", playerID)

	player, err := s.players.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	levels := s.catalog.Levels()
	entries := make([]models.LevelMapEntry, 0, len(levels))
	for _, level := range levels {
		entries = append(entries, models.LevelMapEntry{
			ID:         level.ID,
			Kind:       level.Kind,
			Title:      level.Title,
			Topic:      level.Topic,
			Difficulty: level.Difficulty,
			Completed:  player.HasCompleted(level.ID),
			Unlocked:   engine.IsAvailable(level, player),
			Stars:      player.Stars(level.ID),
			Attempts:   player.Attempts(level.ID),
			Rewards:    level.Rewards,
		})
	}
	return entries, nil
}

func (s *gameService) GetLevel(ctx context.Context, playerID string, levelID int) (*models.LevelView, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting level: player=%s, level=%d", playerID, levelID)

	level, ok := s.catalog.Level(levelID)
	if !ok {
		return nil, errors.NewNotFoundError("level", levelID)
	}

	player, err := s.players.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if !engine.IsAvailable(level, player) {
		return nil, errors.NewLevelLockedError(levelID)
	}

	view := &models.LevelView{
		ID:           level.ID,
		Kind:         level.Kind,
		Title:        level.Title,
		Topic:        level.Topic,
		Difficulty:   level.Difficulty,
		Description:  level.Description,
		PassingScore: level.PassingScore,
		Rewards:      level.Rewards,
		Stars:        player.Stars(level.ID),
		Attempts:     player.Attempts(level.ID),
		Completed:    player.HasCompleted(level.ID),
		Questions:    make([]models.QuestionView, 0, len(level.Questions)),
	}
	for _, q := range level.Questions {
		view.Questions = append(view.Questions, models.QuestionView{
			Text:        q.Text,
			Kind:        q.Kind,
			Options:     q.Options,
			Placeholder: q.Placeholder,
		})
	}
	return view, nil
}

func (s *gameService) SubmitAttempt(ctx context.Context, playerID string, levelID int, answers []models.Answer, timeTakenSeconds int) (*models.SubmitResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting attempt: player=%s, level=%d", playerID, levelID)

	level, ok := s.catalog.Level(levelID)
	if !ok {
		return nil, errors.NewNotFoundError("level", levelID)
	}

	lock := s.locks.Get(playerID)
	lock.Lock()
	defer lock.Unlock()

	player, err := s.players.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err := s.rules.CanAttempt(level, player); err != nil {
		return nil, err
	}

	score, err := engine.Grade(level, answers)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	outcome := engine.EvaluateAttempt(level, score)
	engine.Apply(player, level, outcome, now)

	result := &models.SubmitResult{
		Passed:          outcome.Passed,
		ScorePercentage: score.ScorePercentage,
		CorrectCount:    score.CorrectCount,
		TotalQuestions:  score.TotalQuestions,
		StarsEarned:     outcome.Stars,
		CoinsEarned:     outcome.CoinsEarned,
		XPEarned:        outcome.XPEarned,
		TestBonus:       outcome.TestBonus,
		Results:         score.Results,
		RetryAvailable:  player.Attempts(levelID) < s.rules.MaxRetries,
		Durable:         true,
	}
	if outcome.Passed {
		if next, ok := s.catalog.Level(levelID + 1); ok {
			result.NextLevelUnlocked = engine.IsAvailable(next, player)
		}
	}

	attempt := models.Attempt{
		PlayerID:         playerID,
		LevelID:          levelID,
		LevelKind:        level.Kind,
		ScorePercentage:  score.ScorePercentage,
		CorrectCount:     score.CorrectCount,
		TotalQuestions:   score.TotalQuestions,
		Passed:           outcome.Passed,
		StarsEarned:      outcome.Stars,
		TimeTakenSeconds: timeTakenSeconds,
		CreatedAt:        now,
	}
	if _, err := s.attemptRepo.Insert(ctx, attempt); err != nil {
		log.Error("failed to record attempt: %v", err)
		result.Durable = false
		return result, nil
	}
	if err := s.playerRepo.Save(ctx, player); err != nil {
		log.Error("failed to save player after attempt: %v", err)
		result.Durable = false
		return result, nil
	}

	if outcome.Passed {
		result.NewAchievements = s.awardAchievements(ctx, player, attempt, now)
	}

	if err := s.jobQueue.EnqueueStatsRefresh(playerID); err != nil {
		log.Warn("failed to enqueue stats refresh: %v", err)
	}

	log.Info("attempt recorded: player=%s, level=%d, score=%.1f, passed=%t, stars=%d",
		playerID, levelID, score.ScorePercentage, outcome.Passed, outcome.Stars)
	return result, nil
}

// awardAchievements evaluates achievement conditions against the fresh
// attempts log and persists any unlocks. Failures here never fail the
// submission; the attempt is already durable.
func (s *gameService) awardAchievements(ctx context.Context, player *models.Player, latest models.Attempt, now time.Time) []models.EarnedAchievement {
	log := logger.FromContext(ctx)

	attempts, err := s.attemptRepo.List(ctx, models.AttemptFilter{PlayerID: player.ID})
	if err != nil {
		log.Warn("failed to load attempts for achievement check: %v", err)
		attempts = []models.Attempt{latest}
	}

	stats := engine.BuildStats(player, attempts)
	unlocked := s.evaluator.CheckNew(stats, player.Achievements, now)
	if len(unlocked) == 0 {
		return nil
	}

	reward := engine.Award(player, unlocked)
	for _, a := range unlocked {
		if err := s.achievementRepo.Award(ctx, player.ID, a.ID, a.EarnedAt); err != nil {
			log.Error("failed to persist achievement %s: %v", a.ID, err)
		}
	}
	if err := s.playerRepo.Save(ctx, player); err != nil {
		log.Error("failed to save achievement rewards: %v", err)
	}

	log.Info("achievements unlocked: player=%s, count=%d, coins=%d, xp=%d",
		player.ID, len(unlocked), reward.Coins, reward.XP)
	return unlocked
}

// RecommendedLevels suggests unlocked, uncompleted levels closest to the
// player's frontier. A player averaging below the lesson passing bar is
// steered to lessons before tests and challenges.
func (s *gameService) RecommendedLevels(ctx context.Context, playerID string, limit int) ([]models.LevelMapEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug("recommending levels: player=%s, limit=%d", playerID, limit)

	if limit <= 0 {
		limit = 3
	}

	player, err := s.players.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	var candidates []models.Level
	for _, level := range s.catalog.Levels() {
		if player.HasCompleted(level.ID) || !engine.IsAvailable(level, player) {
			continue
		}
		candidates = append(candidates, level)
	}

	struggling := player.AverageScore > 0 && player.AverageScore < catalog.LessonPassingScore
	sort.SliceStable(candidates, func(i, j int) bool {
		if struggling {
			iLesson := candidates[i].Kind == models.LevelLesson
			jLesson := candidates[j].Kind == models.LevelLesson
			if iLesson != jLesson {
				return iLesson
			}
		}
		return candidates[i].ID < candidates[j].ID
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	recommended := make([]models.LevelMapEntry, 0, len(candidates))
	for _, level := range candidates {
		recommended = append(recommended, models.LevelMapEntry{
			ID:         level.ID,
			Kind:       level.Kind,
			Title:      level.Title,
			Topic:      level.Topic,
			Difficulty: level.Difficulty,
			Unlocked:   true,
			Stars:      player.Stars(level.ID),
			Attempts:   player.Attempts(level.ID),
			Rewards:    level.Rewards,
		})
	}
	return recommended, nil
}

package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"codequest/internal/catalog"
	"codequest/internal/engine"
	apperrors "codequest/internal/errors"
	"codequest/internal/models"
	"codequest/internal/services"
	"codequest/internal/testutil/mocks"
)

type gameServiceFixture struct {
	playerRepo      *mocks.MockPlayerRepository
	attemptRepo     *mocks.MockAttemptRepository
	achievementRepo *mocks.MockAchievementRepository
	purchaseRepo    *mocks.MockPurchaseRepository
	jobQueue        *mocks.MockJobQueue
	catalog         *catalog.Catalog
	svc             services.GameService
}

func newGameServiceFixture(t *testing.T) *gameServiceFixture {
	t.Helper()

	f := &gameServiceFixture{
		playerRepo:      &mocks.MockPlayerRepository{},
		attemptRepo:     &mocks.MockAttemptRepository{},
		achievementRepo: &mocks.MockAchievementRepository{},
		purchaseRepo:    &mocks.MockPurchaseRepository{},
		jobQueue:        &mocks.MockJobQueue{},
		catalog:         catalog.New(),
	}
	playerSvc := services.NewPlayerService(f.playerRepo, f.attemptRepo, f.achievementRepo, f.purchaseRepo)
	f.svc = services.NewGameService(
		f.catalog,
		engine.NewRules(3),
		playerSvc,
		f.playerRepo,
		f.attemptRepo,
		f.achievementRepo,
		f.jobQueue,
		services.NewPlayerLocks(),
	)
	return f
}

// stubPlayerLoad wires the repo calls GetPlayer makes: the stored row, the
// attempt history, earned achievements and purchases.
func (f *gameServiceFixture) stubPlayerLoad(player *models.Player, attempts []models.Attempt) {
	f.playerRepo.On("Get", mock.Anything, player.ID).Return(player, nil)
	f.attemptRepo.On("List", mock.Anything, models.AttemptFilter{PlayerID: player.ID}).Return(attempts, nil)
	f.achievementRepo.On("Earned", mock.Anything, player.ID).Return(map[string]time.Time{}, nil)
	f.purchaseRepo.On("ListByPlayer", mock.Anything, player.ID).Return(map[string]bool{}, nil)
}

func correctAnswers(t *testing.T, cat *catalog.Catalog, levelID int) []models.Answer {
	t.Helper()
	level, ok := cat.Level(levelID)
	require.True(t, ok)

	answers := make([]models.Answer, len(level.Questions))
	for i, q := range level.Questions {
		answers[i] = models.Answer{Choice: q.Correct}
	}
	return answers
}

func TestSubmitAttempt_PassPersistsAndAwards(t *testing.T) {
	f := newGameServiceFixture(t)
	player := models.NewPlayer("p1", "gopher", "hash", time.Now())
	f.stubPlayerLoad(player, nil)

	f.attemptRepo.On("Insert", mock.Anything, mock.Anything).Return(int64(1), nil)
	f.playerRepo.On("Save", mock.Anything, player).Return(nil)
	f.achievementRepo.On("Award", mock.Anything, "p1", "first_steps", mock.Anything).Return(nil)
	f.jobQueue.On("EnqueueStatsRefresh", "p1").Return(nil)

	result, err := f.svc.SubmitAttempt(context.Background(), "p1", 1, correctAnswers(t, f.catalog, 1), 60)
	require.NoError(t, err)

	assert.True(t, result.Passed)
	assert.Equal(t, 100.0, result.ScorePercentage)
	assert.Equal(t, 3, result.StarsEarned)
	assert.True(t, result.Durable)
	assert.True(t, result.NextLevelUnlocked)

	var found bool
	for _, a := range result.NewAchievements {
		if a.ID == "first_steps" {
			found = true
		}
	}
	assert.True(t, found, "first pass should unlock first_steps")

	f.attemptRepo.AssertCalled(t, "Insert", mock.Anything, mock.Anything)
	f.jobQueue.AssertCalled(t, "EnqueueStatsRefresh", "p1")
}

func TestSubmitAttempt_LockedLevel(t *testing.T) {
	f := newGameServiceFixture(t)
	player := models.NewPlayer("p1", "gopher", "hash", time.Now())
	f.stubPlayerLoad(player, nil)

	_, err := f.svc.SubmitAttempt(context.Background(), "p1", 5, nil, 0)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LEVEL_LOCKED", appErr.Code)
	f.attemptRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestSubmitAttempt_RetryLimitLeavesNoHistory(t *testing.T) {
	f := newGameServiceFixture(t)
	player := models.NewPlayer("p1", "gopher", "hash", time.Now())

	exhausted := []models.Attempt{
		{PlayerID: "p1", LevelID: 1, ScorePercentage: 10},
		{PlayerID: "p1", LevelID: 1, ScorePercentage: 20},
		{PlayerID: "p1", LevelID: 1, ScorePercentage: 30},
	}
	f.stubPlayerLoad(player, exhausted)

	_, err := f.svc.SubmitAttempt(context.Background(), "p1", 1, correctAnswers(t, f.catalog, 1), 0)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "RETRY_LIMIT_EXCEEDED", appErr.Code)
	f.attemptRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestSubmitAttempt_AnswerCountMismatch(t *testing.T) {
	f := newGameServiceFixture(t)
	player := models.NewPlayer("p1", "gopher", "hash", time.Now())
	f.stubPlayerLoad(player, nil)

	_, err := f.svc.SubmitAttempt(context.Background(), "p1", 1, []models.Answer{{Choice: 0}}, 0)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ANSWER_COUNT_MISMATCH", appErr.Code)
	f.attemptRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestSubmitAttempt_UnknownLevel(t *testing.T) {
	f := newGameServiceFixture(t)

	_, err := f.svc.SubmitAttempt(context.Background(), "p1", 999, nil, 0)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestSubmitAttempt_GradedButNotDurable(t *testing.T) {
	f := newGameServiceFixture(t)
	player := models.NewPlayer("p1", "gopher", "hash", time.Now())
	f.stubPlayerLoad(player, nil)

	f.attemptRepo.On("Insert", mock.Anything, mock.Anything).Return(int64(0), errors.New("disk full"))

	result, err := f.svc.SubmitAttempt(context.Background(), "p1", 1, correctAnswers(t, f.catalog, 1), 60)
	require.NoError(t, err, "a persistence failure after grading is reported, not raised")

	assert.True(t, result.Passed)
	assert.False(t, result.Durable)
	assert.Empty(t, result.NewAchievements, "achievements are not evaluated for an unsaved attempt")
}

func TestGetLevel_LockedAndNotFound(t *testing.T) {
	f := newGameServiceFixture(t)
	player := models.NewPlayer("p1", "gopher", "hash", time.Now())
	f.stubPlayerLoad(player, nil)

	_, err := f.svc.GetLevel(context.Background(), "p1", 2)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LEVEL_LOCKED", appErr.Code)

	_, err = f.svc.GetLevel(context.Background(), "p1", 0)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestGetLevel_StripsAnswerKey(t *testing.T) {
	f := newGameServiceFixture(t)
	player := models.NewPlayer("p1", "gopher", "hash", time.Now())
	f.stubPlayerLoad(player, nil)

	view, err := f.svc.GetLevel(context.Background(), "p1", 1)
	require.NoError(t, err)

	assert.Equal(t, 1, view.ID)
	require.NotEmpty(t, view.Questions)
	for _, q := range view.Questions {
		if q.Kind == models.QuestionMultipleChoice {
			assert.NotEmpty(t, q.Options)
		}
	}
}

func TestGetLevelMap_UnlockStates(t *testing.T) {
	f := newGameServiceFixture(t)
	player := models.NewPlayer("p1", "gopher", "hash", time.Now())

	history := []models.Attempt{
		{PlayerID: "p1", LevelID: 1, ScorePercentage: 100, Passed: true},
	}
	f.stubPlayerLoad(player, history)

	entries, err := f.svc.GetLevelMap(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, entries, catalog.TotalLevels)

	assert.True(t, entries[0].Completed)
	assert.Equal(t, 3, entries[0].Stars)
	assert.True(t, entries[1].Unlocked, "level 2 opens after level 1")
	assert.False(t, entries[2].Unlocked, "level 3 still needs level 2")
}

func TestRecommendedLevels_SkipsCompleted(t *testing.T) {
	f := newGameServiceFixture(t)
	player := models.NewPlayer("p1", "gopher", "hash", time.Now())

	history := []models.Attempt{
		{PlayerID: "p1", LevelID: 1, ScorePercentage: 100, Passed: true},
	}
	f.stubPlayerLoad(player, history)

	recs, err := f.svc.RecommendedLevels(context.Background(), "p1", 3)
	require.NoError(t, err)
	require.Len(t, recs, 1, "only level 2 is unlocked and uncompleted")
	assert.Equal(t, 2, recs[0].ID)
}

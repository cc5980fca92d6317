package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"codequest/internal/api"
	"codequest/internal/catalog"
	"codequest/internal/engine"
	"codequest/internal/models"
	"codequest/internal/repository/sqlite"
	"codequest/internal/services"
	"codequest/internal/testutil"
	"codequest/internal/testutil/mocks"
)

type apiFixture struct {
	server  *httptest.Server
	client  *http.Client
	catalog *catalog.Catalog
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	t.Cleanup(func() { testutil.MustClose(t, db) })

	playerRepo := sqlite.NewPlayerRepository(db)
	attemptRepo := sqlite.NewAttemptRepository(db)
	achievementRepo := sqlite.NewAchievementRepository(db)
	purchaseRepo := sqlite.NewPurchaseRepository(db)
	statsRepo := sqlite.NewStatsRepository(db)

	jobQueue := &mocks.MockJobQueue{}
	jobQueue.On("EnqueueStatsRefresh", mock.Anything).Return(nil)

	cat := catalog.New()
	playerService := services.NewPlayerService(playerRepo, attemptRepo, achievementRepo, purchaseRepo)
	playerLocks := services.NewPlayerLocks()
	gameService := services.NewGameService(cat, engine.NewRules(3), playerService, playerRepo, attemptRepo, achievementRepo, jobQueue, playerLocks)
	shopService := services.NewShopService(cat, playerService, playerRepo, purchaseRepo, playerLocks)
	statsService := services.NewStatsService(cat, playerService, attemptRepo, statsRepo)

	srv := &api.Server{
		PlayerService:   playerService,
		GameService:     gameService,
		ShopService:     shopService,
		StatsService:    statsService,
		SessionTTL:      time.Hour,
		LeaderboardSize: 10,
	}

	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &apiFixture{
		server:  ts,
		client:  &http.Client{Jar: jar},
		catalog: cat,
	}
}

func (f *apiFixture) postJSON(t *testing.T, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := f.client.Post(f.server.URL+path, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func (f *apiFixture) getJSON(t *testing.T, path string, dst any) *http.Response {
	t.Helper()
	resp, err := f.client.Get(f.server.URL + path)
	require.NoError(t, err)
	if dst != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
	}
	resp.Body.Close()
	return resp
}

func (f *apiFixture) register(t *testing.T, username string) {
	t.Helper()
	resp := f.postJSON(t, "/register", map[string]string{
		"username": username,
		"password": "secret123",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func TestAPI_RequiresSession(t *testing.T) {
	f := newAPIFixture(t)

	resp, err := f.client.Get(f.server.URL + "/levels")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_RegisterAndPlayThrough(t *testing.T) {
	f := newAPIFixture(t)
	f.register(t, "gopher")

	// The session cookie from registration carries over.
	var me models.Player
	resp := f.getJSON(t, "/me", &me)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "gopher", me.Username)
	assert.Equal(t, 1, me.CurrentLevel)

	var levelMap struct {
		Levels []models.LevelMapEntry `json:"levels"`
	}
	resp = f.getJSON(t, "/levels", &levelMap)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, levelMap.Levels, catalog.TotalLevels)
	assert.True(t, levelMap.Levels[0].Unlocked)
	assert.False(t, levelMap.Levels[1].Unlocked)

	var view models.LevelView
	resp = f.getJSON(t, "/levels/1", &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, view.Questions)

	// Answer from the catalog's key, the way a perfect player would.
	level, ok := f.catalog.Level(1)
	require.True(t, ok)
	answers := make([]models.Answer, len(level.Questions))
	for i, q := range level.Questions {
		answers[i] = models.Answer{Choice: q.Correct}
	}

	submitResp := f.postJSON(t, "/levels/1/attempts", map[string]any{
		"answers":            answers,
		"time_taken_seconds": 60,
	})
	var result models.SubmitResult
	decodeBody(t, submitResp, &result)
	require.Equal(t, http.StatusOK, submitResp.StatusCode)

	assert.True(t, result.Passed)
	assert.Equal(t, 100.0, result.ScorePercentage)
	assert.Equal(t, 3, result.StarsEarned)
	assert.True(t, result.Durable)
	assert.True(t, result.NextLevelUnlocked)

	var stats struct {
		Overview       models.PlayerOverview `json:"overview"`
		RecentActivity []models.Attempt      `json:"recent_activity"`
	}
	resp = f.getJSON(t, "/stats", &stats)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, stats.Overview.LevelsCompleted)
	assert.Equal(t, 2, stats.Overview.CurrentLevel)
	assert.Equal(t, 1, stats.Overview.PerfectScores)
	require.Len(t, stats.RecentActivity, 1)
	assert.Equal(t, 1, stats.RecentActivity[0].LevelID)
}

func TestAPI_LockedLevelErrorShape(t *testing.T) {
	f := newAPIFixture(t)
	f.register(t, "gopher")

	resp, err := f.client.Get(f.server.URL + "/levels/5")
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "LEVEL_LOCKED", body.Error.Code)
	assert.NotEmpty(t, body.Error.Message)
}

func TestAPI_RetryLimitAfterThreeFailures(t *testing.T) {
	f := newAPIFixture(t)
	f.register(t, "gopher")

	level, ok := f.catalog.Level(1)
	require.True(t, ok)
	wrong := make([]models.Answer, len(level.Questions))
	for i, q := range level.Questions {
		wrong[i] = models.Answer{Choice: (q.Correct + 1) % len(q.Options)}
	}

	for i := 0; i < 3; i++ {
		resp := f.postJSON(t, "/levels/1/attempts", map[string]any{"answers": wrong})
		var result models.SubmitResult
		decodeBody(t, resp, &result)
		require.Equal(t, http.StatusOK, resp.StatusCode, "attempt %d", i+1)
		assert.False(t, result.Passed)
	}

	resp := f.postJSON(t, "/levels/1/attempts", map[string]any{"answers": wrong})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "fourth attempt is rejected")
}

func TestAPI_LoginLogout(t *testing.T) {
	f := newAPIFixture(t)
	f.register(t, "gopher")

	resp := f.postJSON(t, "/logout", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := f.client.Get(f.server.URL + "/me")
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)

	login := f.postJSON(t, "/login", map[string]string{"username": "gopher", "password": "secret123"})
	login.Body.Close()
	require.Equal(t, http.StatusOK, login.StatusCode)

	resp3, err := f.client.Get(f.server.URL + "/me")
	require.NoError(t, err)
	resp3.Body.Close()
	assert.Equal(t, http.StatusOK, resp3.StatusCode)
}

func TestAPI_BadLevelID(t *testing.T) {
	f := newAPIFixture(t)
	f.register(t, "gopher")

	resp, err := f.client.Get(f.server.URL + "/levels/abc")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = f.client.Get(f.server.URL + fmt.Sprintf("/levels/%d", catalog.TotalLevels+1))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

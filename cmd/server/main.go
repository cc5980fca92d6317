package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codequest/internal/api"
	"codequest/internal/catalog"
	"codequest/internal/config"
	"codequest/internal/db"
	"codequest/internal/engine"
	"codequest/internal/jobs"
	"codequest/internal/logger"
	"codequest/internal/repository/sqlite"
	"codequest/internal/services"
	"codequest/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("CodeQuest Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("max_retries=%d", cfg.MaxRetries)
	log.Debug("session_ttl_hours=%d", cfg.SessionTTLHours)
	log.Debug("stats_worker_count=%d", cfg.StatsWorkerCount)
	log.Debug("stats_queue_size=%d", cfg.StatsQueueSize)
	log.Debug("leaderboard_size=%d", cfg.LeaderboardSize)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	cat := catalog.New()
	log.Info("catalog loaded: %d levels, %d achievements, %d shop rewards",
		len(cat.Levels()), len(cat.Achievements()), len(cat.ShopRewards()))

	playerRepo := sqlite.NewPlayerRepository(database)
	attemptRepo := sqlite.NewAttemptRepository(database)
	achievementRepo := sqlite.NewAchievementRepository(database)
	purchaseRepo := sqlite.NewPurchaseRepository(database)
	statsRepo := sqlite.NewStatsRepository(database)

	statsPool := worker.NewPool(cfg.StatsWorkerCount, cfg.StatsQueueSize)
	jobQueue := jobs.NewWorkerQueue(statsPool, statsRepo)

	playerService := services.NewPlayerService(playerRepo, attemptRepo, achievementRepo, purchaseRepo)
	playerLocks := services.NewPlayerLocks()
	gameService := services.NewGameService(
		cat,
		engine.NewRules(cfg.MaxRetries),
		playerService,
		playerRepo,
		attemptRepo,
		achievementRepo,
		jobQueue,
		playerLocks,
	)
	shopService := services.NewShopService(cat, playerService, playerRepo, purchaseRepo, playerLocks)
	statsService := services.NewStatsService(cat, playerService, attemptRepo, statsRepo)

	srv := &api.Server{
		PlayerService:   playerService,
		GameService:     gameService,
		ShopService:     shopService,
		StatsService:    statsService,
		SessionTTL:      time.Duration(cfg.SessionTTLHours) * time.Hour,
		LeaderboardSize: cfg.LeaderboardSize,
	}

	ctx, cancel := context.WithCancel(context.Background())
	statsPool.Start(ctx)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping worker pool")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	statsPool.Stop()

	log.Info("===========================================")
	log.Info("CodeQuest Server Stopped")
	log.Info("===========================================")
}

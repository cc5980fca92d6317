package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Post("/register", s.handleRegister)
	r.Post("/login", s.handleLogin)
	r.Post("/logout", s.handleLogout)

	r.Group(func(r chi.Router) {
		r.Use(s.playerMiddleware)

		r.Get("/me", s.handleMe)
		r.Get("/levels", s.handleLevelMap)
		r.Get("/levels/recommended", s.handleRecommendedLevels)
		r.Get("/levels/{id}", s.handleLevelDetail)
		r.Post("/levels/{id}/attempts", s.handleSubmitAttempt)
		r.Get("/achievements", s.handleAchievements)
		r.Get("/shop", s.handleShop)
		r.Post("/shop/{id}/purchase", s.handlePurchase)
		r.Get("/stats", s.handleOverview)
		r.Get("/leaderboard", s.handleLeaderboard)
	})

	return r
}

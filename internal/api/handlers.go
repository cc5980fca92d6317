package api

import (
	"net/http"
	"time"

	"codequest/internal/errors"
	"codequest/internal/logger"
	"codequest/internal/services"
)

type Server struct {
	PlayerService   services.PlayerService
	GameService     services.GameService
	ShopService     services.ShopService
	StatsService    services.StatsService
	SessionTTL      time.Duration
	LeaderboardSize int
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var creds credentials
	if err := decodeJSON(r, &creds); err != nil {
		handleError(w, r, err)
		return
	}

	player, err := s.PlayerService.Register(r.Context(), creds.Username, creds.Password)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("player registered: %s", player.Username)
	s.setSessionCookie(w, player.ID)
	respondJSON(w, http.StatusCreated, player)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var creds credentials
	if err := decodeJSON(r, &creds); err != nil {
		handleError(w, r, err)
		return
	}

	player, err := s.PlayerService.Authenticate(r.Context(), creds.Username, creds.Password)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("player logged in: %s", player.Username)
	s.setSessionCookie(w, player.ID)
	respondJSON(w, http.StatusOK, player)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	player := playerFromContext(r.Context())
	if player == nil {
		handleError(w, r, errors.NewUnauthorizedError("not logged in"))
		return
	}
	respondJSON(w, http.StatusOK, player)
}

package api

import (
	"net/http"
	"strconv"
)

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	player := playerFromContext(r.Context())

	overview, err := s.StatsService.GetOverview(r.Context(), player.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	recent, err := s.StatsService.GetRecentActivity(r.Context(), player.ID, 5)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"overview":        overview,
		"recent_activity": recent,
	})
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	player := playerFromContext(r.Context())

	progress, err := s.StatsService.GetAchievementProgress(r.Context(), player.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"achievements": progress})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := s.LeaderboardSize
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := s.StatsService.GetLeaderboard(r.Context(), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"leaderboard": entries})
}

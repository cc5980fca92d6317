package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleShop(w http.ResponseWriter, r *http.Request) {
	player := playerFromContext(r.Context())

	rewards, err := s.ShopService.ListRewards(r.Context(), player.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"rewards": rewards,
		"coins":   player.TotalCoins,
	})
}

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	player := playerFromContext(r.Context())
	rewardID := chi.URLParam(r, "id")

	result, err := s.ShopService.Purchase(r.Context(), player.ID, rewardID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

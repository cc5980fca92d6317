package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"codequest/internal/errors"
	"codequest/internal/logger"
	"codequest/internal/models"
)

func (s *Server) handleLevelMap(w http.ResponseWriter, r *http.Request) {
	player := playerFromContext(r.Context())

	levels, err := s.GameService.GetLevelMap(r.Context(), player.ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"levels": levels})
}

func (s *Server) handleLevelDetail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	player := playerFromContext(r.Context())

	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		log.Warn("invalid level id: %s", idStr)
		handleError(w, r, errors.NewBadRequestError("invalid level id"))
		return
	}

	view, err := s.GameService.GetLevel(r.Context(), player.ID, id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

type submitRequest struct {
	Answers          []models.Answer `json:"answers"`
	TimeTakenSeconds int             `json:"time_taken_seconds"`
}

func (s *Server) handleSubmitAttempt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	player := playerFromContext(r.Context())

	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		log.Warn("invalid level id: %s", idStr)
		handleError(w, r, errors.NewBadRequestError("invalid level id"))
		return
	}

	var req submitRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.GameService.SubmitAttempt(r.Context(), player.ID, id, req.Answers, req.TimeTakenSeconds)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleRecommendedLevels(w http.ResponseWriter, r *http.Request) {
	player := playerFromContext(r.Context())

	limit := 3
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	levels, err := s.GameService.RecommendedLevels(r.Context(), player.ID, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"levels": levels})
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/courtside/totals-api/internal/logic"
	"github.com/courtside/totals-api/internal/models"
)

// GetGameTotal predicts the combined final score for one matchup
// @Summary Predict Game Total
// @Description Resolve a game-total prediction with the full stage breakdown
// @Tags Predictions
// @Produce json
// @Param home query string true "Home team ID"
// @Param away query string true "Away team ID"
// @Param season query string true "Season, e.g. 2025-26"
// @Param line query number false "Betting line to compare against"
// @Success 200 {object} models.PredictionResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /predictions/total [get]
func (h *Handler) GetGameTotal(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := models.ResolveTotalRequest{
		HomeTeamID: q.Get("home"),
		AwayTeamID: q.Get("away"),
		Season:     q.Get("season"),
	}
	if raw := q.Get("line"); raw != "" {
		line, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "line must be numeric")
			return
		}
		req.Line = &line
	}

	h.resolveTotal(w, r, req)
}

// PostGameTotal predicts a game total from a JSON body (batch callers)
// @Summary Predict Game Total (POST)
// @Tags Predictions
// @Accept json
// @Produce json
// @Param request body models.ResolveTotalRequest true "Matchup"
// @Success 200 {object} models.PredictionResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /predictions/total [post]
func (h *Handler) PostGameTotal(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.ResolveTotalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	h.resolveTotal(w, r, req)
}

func (h *Handler) resolveTotal(w http.ResponseWriter, r *http.Request, req models.ResolveTotalRequest) {
	if err := h.validator.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	result, err := h.prediction.ResolveGameTotal(r.Context(), req.HomeTeamID, req.AwayTeamID, req.Season, req.Line)
	if err != nil {
		if errors.Is(err, logic.ErrInvalidInput) {
			h.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Errorw("Failed to resolve game total",
			"error", err, "home", req.HomeTeamID, "away", req.AwayTeamID, "season", req.Season)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to resolve prediction")
		return
	}

	h.jsonResponse(w, http.StatusOK, result)
}

// GetTeamTiers returns the precomputed tier profile for a team
// @Summary Get Team Tier Profile
// @Tags Predictions
// @Produce json
// @Param teamId path string true "Team ID"
// @Param season query string true "Season"
// @Success 200 {object} models.TeamTierProfile
// @Failure 404 {object} map[string]string "Not Found"
// @Router /teams/{teamId}/tiers [get]
func (h *Handler) GetTeamTiers(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamId")
	season := r.URL.Query().Get("season")
	if teamID == "" || season == "" {
		h.errorResponse(w, http.StatusBadRequest, "teamId and season are required")
		return
	}

	profile, err := h.stats.GetTeamTierProfile(r.Context(), teamID, season)
	if err != nil {
		h.logger.Errorw("Failed to get tier profile", "error", err, "team", teamID)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to get tier profile")
		return
	}
	if profile == nil {
		h.errorResponse(w, http.StatusNotFound, "No tier profile for team/season")
		return
	}

	h.jsonResponse(w, http.StatusOK, profile)
}

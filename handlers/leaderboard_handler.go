package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/league-standings/services"
	"github.com/Dosada05/league-standings/standings"
)

type LeaderboardHandler struct {
	leaderboardService services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// GetLeaderboard отдаёт таблицу лидеров с учётом фильтров запроса.
//
// Query parameters:
//
//	type=all|singles|teams   which result tables feed the ratings
//	state=XX                 filter by player state code
//	name=...                 case-insensitive name search
//	hide_inactive=true       drop players with zero recorded games
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	scope := services.MatchScope(query.Get("type"))
	switch scope {
	case "", services.ScopeAll, services.ScopeSingles, services.ScopeTeams:
	default:
		badRequestResponse(w, r, errors.New("type must be one of: all, singles, teams"))
		return
	}

	hideInactive := false
	if raw := query.Get("hide_inactive"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			badRequestResponse(w, r, errors.New("hide_inactive must be a boolean"))
			return
		}
		hideInactive = parsed
	}

	filter := standings.LeaderboardFilter{
		NameQuery:    query.Get("name"),
		State:        query.Get("state"),
		HideInactive: hideInactive,
	}

	entries, err := h.leaderboardService.GetLeaderboard(r.Context(), scope, filter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"leaderboard": entries}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *LeaderboardHandler) GetPlayerHistory(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if playerID == "" {
		badRequestResponse(w, r, errors.New("player id is required"))
		return
	}

	history, err := h.leaderboardService.GetPlayerHistory(r.Context(), playerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"history": history}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

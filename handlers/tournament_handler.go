package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Dosada05/league-standings/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(tournamentService services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: tournamentService}
}

func (h *TournamentHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.tournamentService.ListEvents(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"events": events}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetEventPlacements отдаёт итоговые места одного турнира. Турнир
// идентифицируется парой name+date из query-параметров.
func (h *TournamentHandler) GetEventPlacements(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	name := query.Get("name")
	if name == "" {
		badRequestResponse(w, r, errors.New("name query parameter is required"))
		return
	}

	dateStr := query.Get("date")
	if dateStr == "" {
		badRequestResponse(w, r, errors.New("date query parameter is required"))
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		badRequestResponse(w, r, errors.New("date must be in YYYY-MM-DD format"))
		return
	}

	placements, err := h.tournamentService.GetEventPlacements(r.Context(), name, date)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"placements": placements}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteEvent удаляет все результаты одного турнира.
func (h *TournamentHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	name := query.Get("name")
	if name == "" {
		badRequestResponse(w, r, errors.New("name query parameter is required"))
		return
	}

	dateStr := query.Get("date")
	if dateStr == "" {
		badRequestResponse(w, r, errors.New("date query parameter is required"))
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		badRequestResponse(w, r, errors.New("date must be in YYYY-MM-DD format"))
		return
	}

	if err := h.tournamentService.DeleteEvent(r.Context(), name, date); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

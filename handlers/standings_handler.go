package handlers

import (
	"net/http"

	"github.com/Dosada05/swiss-tournament/services"
)

type StandingsHandler struct {
	tournamentService services.TournamentService
	archiveService    services.ArchiveService
}

func NewStandingsHandler(ts services.TournamentService, as services.ArchiveService) *StandingsHandler {
	return &StandingsHandler{
		tournamentService: ts,
		archiveService:    as,
	}
}

// GetStandings godoc
// @Summary Current standings
// @Tags standings
// @Description Players ordered by wins, ties kept in registration order.
// @Produce json
// @Success 200 {object} map[string]interface{} "Standings"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /standings [get]
func (h *StandingsHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.tournamentService.Standings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetPairings godoc
// @Summary Pairings for the next round
// @Tags standings
// @Produce json
// @Success 200 {object} map[string]interface{} "Pairings"
// @Failure 409 {object} map[string]string "Odd number of players"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /pairings [get]
func (h *StandingsHandler) GetPairings(w http.ResponseWriter, r *http.Request) {
	pairings, err := h.tournamentService.Pairings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"pairings": pairings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ArchiveRound godoc
// @Summary Archive the current round
// @Tags standings
// @Description Uploads standings and next-round pairings to the archive bucket.
// @Produce json
// @Success 201 {object} services.ArchiveResult "Archived snapshot location"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Odd number of players"
// @Failure 503 {object} map[string]string "Archive not configured"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /rounds/archive [post]
func (h *StandingsHandler) ArchiveRound(w http.ResponseWriter, r *http.Request) {
	result, err := h.archiveService.ArchiveRound(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"archive": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

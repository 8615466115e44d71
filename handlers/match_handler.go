package handlers

import (
	"net/http"

	"github.com/Dosada05/swiss-tournament/services"
)

type MatchHandler struct {
	tournamentService services.TournamentService
}

func NewMatchHandler(ts services.TournamentService) *MatchHandler {
	return &MatchHandler{
		tournamentService: ts,
	}
}

type reportMatchInput struct {
	WinnerID int `json:"winner_id"`
	LoserID  int `json:"loser_id"`
}

// ReportMatch godoc
// @Summary Record the result of a match
// @Tags matches
// @Accept json
// @Produce json
// @Param body body reportMatchInput true "Winner and loser IDs"
// @Success 201 {object} map[string]interface{} "Recorded match"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Player not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /matches [post]
func (h *MatchHandler) ReportMatch(w http.ResponseWriter, r *http.Request) {
	var input reportMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.tournamentService.ReportMatch(r.Context(), input.WinnerID, input.LoserID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListMatches godoc
// @Summary List recorded matches
// @Tags matches
// @Produce json
// @Success 200 {object} map[string]interface{} "Matches in the order they were reported"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /matches [get]
func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.tournamentService.ListMatches(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteMatches godoc
// @Summary Remove every recorded match
// @Tags matches
// @Produce json
// @Success 200 {object} map[string]int "Number of matches removed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /matches [delete]
func (h *MatchHandler) DeleteMatches(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.tournamentService.DeleteMatches(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"deleted": deleted}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

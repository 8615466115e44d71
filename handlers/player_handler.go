package handlers

import (
	"net/http"

	"github.com/Dosada05/swiss-tournament/services"
)

type PlayerHandler struct {
	tournamentService services.TournamentService
}

func NewPlayerHandler(ts services.TournamentService) *PlayerHandler {
	return &PlayerHandler{
		tournamentService: ts,
	}
}

type registerPlayerInput struct {
	Name string `json:"name"`
}

// RegisterPlayer godoc
// @Summary Register a player
// @Tags players
// @Accept json
// @Produce json
// @Param body body registerPlayerInput true "Player name"
// @Success 201 {object} map[string]interface{} "Registered player"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /players [post]
func (h *PlayerHandler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	var input registerPlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.tournamentService.RegisterPlayer(r.Context(), input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListPlayers godoc
// @Summary List registered players
// @Tags players
// @Produce json
// @Success 200 {object} map[string]interface{} "Players in registration order and their count"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /players [get]
func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.tournamentService.ListPlayers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"players": players, "count": len(players)}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CountPlayers godoc
// @Summary Count registered players
// @Tags players
// @Produce json
// @Success 200 {object} map[string]int "Player count"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /players/count [get]
func (h *PlayerHandler) CountPlayers(w http.ResponseWriter, r *http.Request) {
	count, err := h.tournamentService.CountPlayers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"count": count}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// MatchesPlayed godoc
// @Summary Number of matches a player has played
// @Tags players
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {object} map[string]int "Matches played"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Player not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /players/{playerID}/matches/count [get]
func (h *PlayerHandler) MatchesPlayed(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	played, err := h.tournamentService.MatchesPlayed(r.Context(), playerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"player_id": playerID, "matches_played": played}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeletePlayers godoc
// @Summary Remove every registered player
// @Tags players
// @Description Fails with 409 while matches are still recorded.
// @Produce json
// @Success 200 {object} map[string]int "Number of players removed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Matches still recorded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /players [delete]
func (h *PlayerHandler) DeletePlayers(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.tournamentService.DeletePlayers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"deleted": deleted}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

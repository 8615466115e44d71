package models

import "time"

// StandingRow is derived from the current players and matches and is never stored.
type StandingRow struct {
	PlayerID      int    `json:"player_id"`
	Name          string `json:"name"`
	Wins          int    `json:"wins"`
	MatchesPlayed int    `json:"matches_played"`
}

// Pairing is one board of the next round.
type Pairing struct {
	Player1ID   int    `json:"player1_id"`
	Player1Name string `json:"player1_name"`
	Player2ID   int    `json:"player2_id"`
	Player2Name string `json:"player2_name"`
}

// RoundSnapshot is what gets archived before a round starts.
type RoundSnapshot struct {
	Round      int           `json:"round"`
	Standings  []StandingRow `json:"standings"`
	Pairings   []Pairing     `json:"pairings"`
	ArchivedAt time.Time     `json:"archived_at"`
}

package models

import "time"

// MatchResult records a decided match. There are no draws and results are never edited.
type MatchResult struct {
	ID        int       `json:"id" db:"id"`
	WinnerID  int       `json:"winner_id" db:"winner_id"`
	LoserID   int       `json:"loser_id" db:"loser_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

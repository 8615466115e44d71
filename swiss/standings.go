// Package swiss computes standings and next-round pairings for a Swiss-system
// tournament. Everything here is a pure function of its arguments: no I/O, no
// logging and no state between calls.
package swiss

import (
	"sort"

	"github.com/Dosada05/swiss-tournament/models"
)

// ComputeStandings counts wins and matches played for every player and orders
// the rows by wins, most first. Players with equal wins keep the order in which
// they were supplied.
func ComputeStandings(players []models.Player, matches []models.MatchResult) ([]models.StandingRow, error) {
	standings := make([]models.StandingRow, len(players))
	index := make(map[int]int, len(players))
	for i, p := range players {
		standings[i] = models.StandingRow{PlayerID: p.ID, Name: p.Name}
		index[p.ID] = i
	}

	for i, m := range matches {
		winner, ok := index[m.WinnerID]
		if !ok {
			return nil, &UnknownPlayerError{MatchIndex: i, PlayerID: m.WinnerID}
		}
		loser, ok := index[m.LoserID]
		if !ok {
			return nil, &UnknownPlayerError{MatchIndex: i, PlayerID: m.LoserID}
		}
		standings[winner].Wins++
		standings[winner].MatchesPlayed++
		standings[loser].MatchesPlayed++
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Wins > standings[j].Wins
	})

	return standings, nil
}

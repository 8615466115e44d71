package swiss

import "github.com/Dosada05/swiss-tournament/models"

// ComputePairings pairs neighbours in standings order: (0,1), (2,3), ...
// Previous opponents are not tracked, so rematches are possible.
func ComputePairings(standings []models.StandingRow) ([]models.Pairing, error) {
	if len(standings)%2 != 0 {
		return nil, &OddPlayerCountError{Count: len(standings)}
	}

	pairings := make([]models.Pairing, 0, len(standings)/2)
	for i := 0; i < len(standings); i += 2 {
		a, b := standings[i], standings[i+1]
		pairings = append(pairings, models.Pairing{
			Player1ID:   a.PlayerID,
			Player1Name: a.Name,
			Player2ID:   b.PlayerID,
			Player2Name: b.Name,
		})
	}
	return pairings, nil
}

// NextRound is the round number the pairings are for: one more than the most
// matches any player has played so far.
func NextRound(standings []models.StandingRow) int {
	played := 0
	for _, s := range standings {
		if s.MatchesPlayed > played {
			played = s.MatchesPlayed
		}
	}
	return played + 1
}

package services

import (
	"context"
	"strings"
	"testing"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/swiss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerAll(t *testing.T, svc TournamentService, names ...string) []*models.Player {
	t.Helper()
	players := make([]*models.Player, 0, len(names))
	for _, n := range names {
		p, err := svc.RegisterPlayer(context.Background(), n)
		require.NoError(t, err)
		players = append(players, p)
	}
	return players
}

func TestRegisterPlayer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantErr  error
	}{
		{name: "plain name", input: "Bobby Fischer", wantName: "Bobby Fischer"},
		{name: "trimmed", input: "  Judit Polgar \n", wantName: "Judit Polgar"},
		{name: "blank", input: "   ", wantErr: ErrPlayerNameRequired},
		{name: "too long", input: strings.Repeat("x", maxPlayerNameLength+1), wantErr: ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestTournamentService(t, nil)
			p, err := svc.RegisterPlayer(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, p.ID)
			assert.Equal(t, tt.wantName, p.Name)
		})
	}
}

func TestCountAndDeletePlayers(t *testing.T) {
	ctx := context.Background()
	svc := newTestTournamentService(t, nil)

	count, err := svc.CountPlayers(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	registerAll(t, svc, "Chandra Nalaar", "Jace Beleren")
	count, err = svc.CountPlayers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	n, err := svc.DeletePlayers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	count, err = svc.CountPlayers(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestReportMatch(t *testing.T) {
	ctx := context.Background()
	svc := newTestTournamentService(t, nil)
	ps := registerAll(t, svc, "A", "B")

	tests := []struct {
		name    string
		winner  int
		loser   int
		wantErr error
	}{
		{name: "valid", winner: ps[0].ID, loser: ps[1].ID},
		{name: "same player", winner: ps[0].ID, loser: ps[0].ID, wantErr: ErrSelfMatch},
		{name: "zero id", winner: 0, loser: ps[1].ID, wantErr: ErrValidationFailed},
		{name: "unregistered loser", winner: ps[0].ID, loser: ps[1].ID + 1000, wantErr: ErrPlayerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := svc.ReportMatch(ctx, tt.winner, tt.loser)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, m.ID)
			assert.Equal(t, tt.winner, m.WinnerID)
			assert.Equal(t, tt.loser, m.LoserID)
		})
	}

	matches, err := svc.ListMatches(ctx)
	require.NoError(t, err)
	assert.Len(t, matches, 1, "rejected reports must not be recorded")
}

func TestStandingsAndPairings(t *testing.T) {
	ctx := context.Background()
	svc := newTestTournamentService(t, nil)

	standings, err := svc.Standings(ctx)
	require.NoError(t, err)
	assert.Empty(t, standings)

	pairings, err := svc.Pairings(ctx)
	require.NoError(t, err)
	assert.Empty(t, pairings)

	ps := registerAll(t, svc, "A", "B", "C", "D")
	a, b, c, d := ps[0], ps[1], ps[2], ps[3]

	for _, m := range [][2]int{{a.ID, b.ID}, {c.ID, d.ID}, {a.ID, c.ID}} {
		_, err := svc.ReportMatch(ctx, m[0], m[1])
		require.NoError(t, err)
	}

	standings, err = svc.Standings(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.StandingRow{
		{PlayerID: a.ID, Name: "A", Wins: 2, MatchesPlayed: 2},
		{PlayerID: c.ID, Name: "C", Wins: 1, MatchesPlayed: 2},
		{PlayerID: b.ID, Name: "B", Wins: 0, MatchesPlayed: 1},
		{PlayerID: d.ID, Name: "D", Wins: 0, MatchesPlayed: 1},
	}, standings)

	pairings, err = svc.Pairings(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Pairing{
		{Player1ID: a.ID, Player1Name: "A", Player2ID: c.ID, Player2Name: "C"},
		{Player1ID: b.ID, Player1Name: "B", Player2ID: d.ID, Player2Name: "D"},
	}, pairings)

	played, err := svc.MatchesPlayed(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, played)

	_, err = svc.MatchesPlayed(ctx, d.ID+1000)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestPairingsOddPlayerCount(t *testing.T) {
	svc := newTestTournamentService(t, nil)
	registerAll(t, svc, "A", "B", "C")

	pairings, err := svc.Pairings(context.Background())
	assert.Nil(t, pairings)
	assert.ErrorIs(t, err, swiss.ErrOddPlayerCount)
}

func TestResetsAreIndependent(t *testing.T) {
	ctx := context.Background()
	svc := newTestTournamentService(t, nil)
	ps := registerAll(t, svc, "A", "B")
	_, err := svc.ReportMatch(ctx, ps[1].ID, ps[0].ID)
	require.NoError(t, err)

	_, err = svc.DeletePlayers(ctx)
	assert.ErrorIs(t, err, ErrPlayersHaveMatches)

	n, err := svc.DeleteMatches(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	players, err := svc.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 2)

	standings, err := svc.Standings(ctx)
	require.NoError(t, err)
	for _, row := range standings {
		assert.Zero(t, row.MatchesPlayed)
	}

	_, err = svc.DeletePlayers(ctx)
	assert.NoError(t, err)
}

func TestMutationsPublishStandings(t *testing.T) {
	ctx := context.Background()
	pub := &fakePublisher{}
	svc := newTestTournamentService(t, pub)

	ps := registerAll(t, svc, "A", "B")
	_, err := svc.ReportMatch(ctx, ps[1].ID, ps[0].ID)
	require.NoError(t, err)

	require.Len(t, pub.messages, 3)
	for _, room := range pub.rooms {
		assert.Equal(t, StandingsRoom, room)
	}

	last := pub.last()
	assert.Equal(t, MessageStandingsUpdated, last.Type)
	standings, ok := last.Payload.([]models.StandingRow)
	require.True(t, ok)
	require.Len(t, standings, 2)
	assert.Equal(t, ps[1].ID, standings[0].PlayerID)
	assert.Equal(t, 1, standings[0].Wins)

	// Rejected reports publish nothing.
	_, err = svc.ReportMatch(ctx, ps[0].ID, ps[0].ID)
	require.Error(t, err)
	assert.Len(t, pub.messages, 3)
}

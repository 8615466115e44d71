package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
	"github.com/Dosada05/swiss-tournament/swiss"
)

const (
	StandingsRoom           = "standings"
	MessageStandingsUpdated = "STANDINGS_UPDATED"
)

const maxPlayerNameLength = 200

// StandingsPublisher pushes a message to every client subscribed to a room.
type StandingsPublisher interface {
	BroadcastToRoom(roomID string, message interface{})
}

type PublishedMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	RoomID  string      `json:"room_id,omitempty"`
}

type TournamentService interface {
	RegisterPlayer(ctx context.Context, name string) (*models.Player, error)
	ReportMatch(ctx context.Context, winnerID, loserID int) (*models.MatchResult, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
	ListMatches(ctx context.Context) ([]models.MatchResult, error)
	CountPlayers(ctx context.Context) (int, error)
	MatchesPlayed(ctx context.Context, playerID int) (int, error)
	DeleteMatches(ctx context.Context) (int64, error)
	DeletePlayers(ctx context.Context) (int64, error)
	Standings(ctx context.Context) ([]models.StandingRow, error)
	Pairings(ctx context.Context) ([]models.Pairing, error)
}

type tournamentService struct {
	conn       *db.DB
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
	publisher  StandingsPublisher
	logger     *slog.Logger
}

// NewTournamentService wires the store. publisher may be nil.
func NewTournamentService(
	conn *db.DB,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	publisher StandingsPublisher,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		conn:       conn,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (s *tournamentService) RegisterPlayer(ctx context.Context, name string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrPlayerNameRequired
	}
	if len(name) > maxPlayerNameLength {
		return nil, fmt.Errorf("%w: name longer than %d characters", ErrValidationFailed, maxPlayerNameLength)
	}

	player := &models.Player{Name: name}
	if err := s.playerRepo.Create(ctx, nil, player); err != nil {
		return nil, fmt.Errorf("failed to register player: %w", err)
	}
	s.logger.Info("player registered", slog.Int("player_id", player.ID), slog.String("name", player.Name))

	s.publishStandings(ctx)
	return player, nil
}

func (s *tournamentService) ReportMatch(ctx context.Context, winnerID, loserID int) (*models.MatchResult, error) {
	if winnerID <= 0 || loserID <= 0 {
		return nil, fmt.Errorf("%w: winner_id and loser_id must be positive", ErrValidationFailed)
	}
	if winnerID == loserID {
		return nil, ErrSelfMatch
	}

	match := &models.MatchResult{WinnerID: winnerID, LoserID: loserID}
	if err := s.matchRepo.Create(ctx, nil, match); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMatchPlayerInvalid):
			return nil, fmt.Errorf("%w: winner %d or loser %d is not registered", ErrPlayerNotFound, winnerID, loserID)
		case errors.Is(err, repositories.ErrMatchSelf):
			return nil, ErrSelfMatch
		}
		return nil, fmt.Errorf("failed to record match: %w", err)
	}
	s.logger.Info("match reported",
		slog.Int("match_id", match.ID), slog.Int("winner_id", winnerID), slog.Int("loser_id", loserID))

	s.publishStandings(ctx)
	return match, nil
}

func (s *tournamentService) ListPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := s.playerRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

func (s *tournamentService) ListMatches(ctx context.Context) ([]models.MatchResult, error) {
	matches, err := s.matchRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (s *tournamentService) CountPlayers(ctx context.Context) (int, error) {
	count, err := s.playerRepo.Count(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return count, nil
}

func (s *tournamentService) MatchesPlayed(ctx context.Context, playerID int) (int, error) {
	if _, err := s.playerRepo.GetByID(ctx, nil, playerID); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return 0, fmt.Errorf("%w: id %d", ErrPlayerNotFound, playerID)
		}
		return 0, err
	}
	count, err := s.matchRepo.CountByPlayer(ctx, nil, playerID)
	if err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}

func (s *tournamentService) DeleteMatches(ctx context.Context) (int64, error) {
	n, err := s.matchRepo.DeleteAll(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to delete matches: %w", err)
	}
	s.logger.Info("matches deleted", slog.Int64("count", n))

	s.publishStandings(ctx)
	return n, nil
}

func (s *tournamentService) DeletePlayers(ctx context.Context) (int64, error) {
	n, err := s.playerRepo.DeleteAll(ctx, nil)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayersHaveMatches) {
			return 0, ErrPlayersHaveMatches
		}
		return 0, fmt.Errorf("failed to delete players: %w", err)
	}
	s.logger.Info("players deleted", slog.Int64("count", n))

	s.publishStandings(ctx)
	return n, nil
}

func (s *tournamentService) Standings(ctx context.Context) ([]models.StandingRow, error) {
	players, matches, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	standings, err := swiss.ComputeStandings(players, matches)
	if err != nil {
		s.logger.Error("inconsistent tournament snapshot", slog.Any("error", err))
		return nil, fmt.Errorf("failed to compute standings: %w", err)
	}
	return standings, nil
}

func (s *tournamentService) Pairings(ctx context.Context) ([]models.Pairing, error) {
	standings, err := s.Standings(ctx)
	if err != nil {
		return nil, err
	}
	pairings, err := swiss.ComputePairings(standings)
	if err != nil {
		return nil, fmt.Errorf("failed to compute pairings: %w", err)
	}
	return pairings, nil
}

// snapshot reads players and matches in one transaction so that no match can
// point at a player removed between the two reads.
func (s *tournamentService) snapshot(ctx context.Context) (players []models.Player, matches []models.MatchResult, err error) {
	tx, err := s.conn.BeginTx(ctx, s.conn.Dialect.SnapshotTxOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			s.logger.Error("snapshot rollback failed", slog.Any("error", rbErr))
		}
	}()

	players, err = s.playerRepo.List(ctx, tx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read players: %w", err)
	}
	matches, err = s.matchRepo.List(ctx, tx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read matches: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to close snapshot transaction: %w", err)
	}
	return players, matches, nil
}

func (s *tournamentService) publishStandings(ctx context.Context) {
	if s.publisher == nil {
		return
	}
	standings, err := s.Standings(ctx)
	if err != nil {
		s.logger.Warn("skipping standings broadcast", slog.Any("error", err))
		return
	}
	s.publisher.BroadcastToRoom(StandingsRoom, PublishedMessage{
		Type:    MessageStandingsUpdated,
		Payload: standings,
		RoomID:  StandingsRoom,
	})
}

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/storage"
	"github.com/Dosada05/swiss-tournament/swiss"
	"golang.org/x/sync/errgroup"
)

const (
	archiveContentType = "application/json"
	latestRoundKey     = "rounds/latest.json"
)

type ArchiveResult struct {
	Round     int    `json:"round"`
	Key       string `json:"key"`
	URL       string `json:"url"`
	LatestURL string `json:"latest_url"`
}

type ArchiveService interface {
	ArchiveRound(ctx context.Context) (*ArchiveResult, error)
}

type archiveService struct {
	tournament TournamentService
	uploader   storage.FileUploader
	logger     *slog.Logger
	now        func() time.Time
}

// NewArchiveService returns a service whose ArchiveRound fails with
// ErrArchiveDisabled when uploader is nil.
func NewArchiveService(tournament TournamentService, uploader storage.FileUploader, logger *slog.Logger) ArchiveService {
	return &archiveService{
		tournament: tournament,
		uploader:   uploader,
		logger:     logger,
		now:        time.Now,
	}
}

func roundKey(round int) string {
	return fmt.Sprintf("rounds/round-%03d.json", round)
}

// ArchiveRound stores the current standings together with the pairings for the
// next round. It refuses to archive a round that cannot be paired.
func (s *archiveService) ArchiveRound(ctx context.Context) (*ArchiveResult, error) {
	if s.uploader == nil {
		return nil, ErrArchiveDisabled
	}

	standings, err := s.tournament.Standings(ctx)
	if err != nil {
		return nil, err
	}
	pairings, err := swiss.ComputePairings(standings)
	if err != nil {
		return nil, fmt.Errorf("failed to compute pairings for archive: %w", err)
	}

	snapshot := models.RoundSnapshot{
		Round:      swiss.NextRound(standings),
		Standings:  standings,
		Pairings:   pairings,
		ArchivedAt: s.now().UTC(),
	}
	body, err := json.MarshalIndent(snapshot, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to encode round snapshot: %w", err)
	}

	key := roundKey(snapshot.Round)
	results := make([]*storage.UploadResult, 2)
	g, gctx := errgroup.WithContext(ctx)
	for i, k := range []string{key, latestRoundKey} {
		g.Go(func() error {
			res, err := s.uploader.Upload(gctx, k, archiveContentType, bytes.NewReader(body))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to archive round %d: %w", snapshot.Round, err)
	}

	s.logger.Info("round archived",
		slog.Int("round", snapshot.Round),
		slog.String("key", key),
		slog.Int("pairings", len(pairings)))

	return &ArchiveResult{
		Round:     snapshot.Round,
		Key:       key,
		URL:       results[0].Location,
		LatestURL: results[1].Location,
	}, nil
}

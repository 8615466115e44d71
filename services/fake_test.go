package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/repositories"
	"github.com/Dosada05/swiss-tournament/storage"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConn(t *testing.T) *db.DB {
	t.Helper()
	conn, err := db.Connect("sqlite://"+filepath.Join(t.TempDir(), "svc.db"), 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, conn.Migrate(context.Background()))
	return conn
}

func newTestTournamentService(t *testing.T, publisher StandingsPublisher) TournamentService {
	t.Helper()
	conn := newTestConn(t)
	return NewTournamentService(
		conn,
		repositories.NewPlayerRepository(conn),
		repositories.NewMatchRepository(conn),
		publisher,
		discardLogger(),
	)
}

type fakePublisher struct {
	mu       sync.Mutex
	messages []PublishedMessage
	rooms    []string
}

func (f *fakePublisher) BroadcastToRoom(roomID string, message interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rooms = append(f.rooms, roomID)
	if m, ok := message.(PublishedMessage); ok {
		f.messages = append(f.messages, m)
	}
}

func (f *fakePublisher) last() PublishedMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.messages[len(f.messages)-1]
}

type fakeUploader struct {
	mu       sync.Mutex
	objects  map[string][]byte
	UploadFn func(key string) error
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{objects: make(map[string][]byte)}
}

func (f *fakeUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	if f.UploadFn != nil {
		if err := f.UploadFn(key); err != nil {
			return nil, err
		}
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.objects[key] = body
	f.mu.Unlock()
	return &storage.UploadResult{Key: key, Location: f.GetPublicURL(key)}, nil
}

func (f *fakeUploader) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.objects[key]; !ok {
		return errors.New("no such key")
	}
	delete(f.objects, key)
	return nil
}

func (f *fakeUploader) GetPublicURL(key string) string {
	return "https://archive.test/" + key
}

package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/handlers"
	"github.com/Dosada05/swiss-tournament/hub"
	"github.com/Dosada05/swiss-tournament/repositories"
	"github.com/Dosada05/swiss-tournament/services"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const organizerPassword = "let-me-in"

type testServer struct {
	*httptest.Server
	hub *hub.Hub
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	conn, err := db.Connect("sqlite://"+filepath.Join(t.TempDir(), "routes.db"), 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, conn.Migrate(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	wsHub := hub.New(logger)
	go wsHub.Run(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(organizerPassword), bcrypt.MinCost)
	require.NoError(t, err)

	tournament := services.NewTournamentService(conn,
		repositories.NewPlayerRepository(conn),
		repositories.NewMatchRepository(conn),
		wsHub, logger)
	archive := services.NewArchiveService(tournament, nil, logger)

	router := chi.NewRouter()
	SetupRoutes(router, Options{JWTSecret: "test-secret", AllowedOrigins: []string{"*"}, Logger: logger}, Handlers{
		Auth:      handlers.NewAuthHandler(services.NewAuthService(string(hash)), "test-secret"),
		Player:    handlers.NewPlayerHandler(tournament),
		Match:     handlers.NewMatchHandler(tournament),
		Standings: handlers.NewStandingsHandler(tournament, archive),
		WebSocket: handlers.NewWebSocketHandler(wsHub, logger),
		Health:    handlers.NewHealthHandler(conn),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, hub: wsHub}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (int, map[string]json.RawMessage) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]json.RawMessage{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	status, body := s.do(t, http.MethodPost, "/auth/login", "", map[string]string{"password": organizerPassword})
	require.Equal(t, http.StatusOK, status)
	var token string
	require.NoError(t, json.Unmarshal(body["token"], &token))
	require.NotEmpty(t, token)
	return token
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

type playerBody struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type standingBody struct {
	PlayerID      int    `json:"player_id"`
	Name          string `json:"name"`
	Wins          int    `json:"wins"`
	MatchesPlayed int    `json:"matches_played"`
}

type pairingBody struct {
	Player1Name string `json:"player1_name"`
	Player2Name string `json:"player2_name"`
}

func TestTournamentFlow(t *testing.T) {
	srv := newTestServer(t)

	status, _ := srv.do(t, http.MethodPost, "/auth/login", "", map[string]string{"password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = srv.do(t, http.MethodPost, "/players", "", map[string]string{"name": "A"})
	assert.Equal(t, http.StatusUnauthorized, status)

	token := srv.login(t)

	ids := map[string]int{}
	for _, name := range []string{"A", "B", "C", "D"} {
		status, body := srv.do(t, http.MethodPost, "/players", token, map[string]string{"name": name})
		require.Equal(t, http.StatusCreated, status)
		p := decode[playerBody](t, body["player"])
		assert.Equal(t, name, p.Name)
		ids[name] = p.ID
	}

	status, body := srv.do(t, http.MethodGet, "/players/count", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 4, decode[int](t, body["count"]))

	for _, m := range [][2]string{{"A", "B"}, {"C", "D"}, {"A", "C"}} {
		status, _ := srv.do(t, http.MethodPost, "/matches", token, map[string]int{"winner_id": ids[m[0]], "loser_id": ids[m[1]]})
		require.Equal(t, http.StatusCreated, status)
	}

	status, _ = srv.do(t, http.MethodPost, "/matches", token, map[string]int{"winner_id": ids["A"], "loser_id": ids["A"]})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = srv.do(t, http.MethodPost, "/matches", token, map[string]int{"winner_id": ids["A"], "loser_id": 9999})
	assert.Equal(t, http.StatusNotFound, status)

	status, body = srv.do(t, http.MethodGet, "/standings", "", nil)
	require.Equal(t, http.StatusOK, status)
	standings := decode[[]standingBody](t, body["standings"])
	require.Len(t, standings, 4)
	assert.Equal(t, []string{"A", "C", "B", "D"}, []string{standings[0].Name, standings[1].Name, standings[2].Name, standings[3].Name})
	assert.Equal(t, 2, standings[0].Wins)
	assert.Equal(t, 2, standings[1].MatchesPlayed)

	status, body = srv.do(t, http.MethodGet, "/pairings", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []pairingBody{{"A", "C"}, {"B", "D"}}, decode[[]pairingBody](t, body["pairings"]))

	status, body = srv.do(t, http.MethodGet, "/players/"+strconv.Itoa(ids["A"])+"/matches/count", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, decode[int](t, body["matches_played"]))

	status, _ = srv.do(t, http.MethodGet, "/players/abc/matches/count", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = srv.do(t, http.MethodDelete, "/players", token, nil)
	assert.Equal(t, http.StatusConflict, status)

	status, _ = srv.do(t, http.MethodPost, "/rounds/archive", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)

	status, body = srv.do(t, http.MethodDelete, "/matches", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3, decode[int](t, body["deleted"]))

	status, body = srv.do(t, http.MethodDelete, "/players", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 4, decode[int](t, body["deleted"]))
}

func TestOddPlayerCountConflict(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t)

	for _, name := range []string{"A", "B", "C"} {
		status, _ := srv.do(t, http.MethodPost, "/players", token, map[string]string{"name": name})
		require.Equal(t, http.StatusCreated, status)
	}

	status, body := srv.do(t, http.MethodGet, "/pairings", "", nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, string(body["error"]), "even number of players")
}

func TestHealthAndDocs(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.do(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", decode[string](t, body["status"]))

	resp, err := srv.Client().Get(srv.URL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	doc, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "Swiss Tournament API")
	assert.Contains(t, string(doc), "/players/{playerID}/matches/count")
}

func TestWebSocketReceivesStandingsUpdates(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return srv.hub.ClientCount(services.StandingsRoom) == 1
	}, 2*time.Second, 10*time.Millisecond)

	status, _ := srv.do(t, http.MethodPost, "/players", token, map[string]string{"name": "Magnus"})
	require.Equal(t, http.StatusCreated, status)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type    string         `json:"type"`
		Payload []standingBody `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, services.MessageStandingsUpdated, msg.Type)
	require.Len(t, msg.Payload, 1)
	assert.Equal(t, "Magnus", msg.Payload[0].Name)
}

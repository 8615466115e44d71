package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/swiss-tournament/hub"
	"github.com/Dosada05/swiss-tournament/services"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Standings are public; CORS_ALLOWED_ORIGINS governs the REST API only.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebSocketHandler struct {
	hub    *hub.Hub
	logger *slog.Logger
}

func NewWebSocketHandler(h *hub.Hub, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:    h,
		logger: logger,
	}
}

// ServeWs upgrades the connection and subscribes it to standings updates.
// @Summary Live standings updates
// @Tags standings
// @Description WebSocket. Every change to players or matches pushes a STANDINGS_UPDATED message.
// @Router /ws [get]
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error.
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}
	h.logger.Debug("websocket client connected", slog.String("remote_addr", r.RemoteAddr))

	h.hub.Attach(conn, services.StandingsRoom)
}

package handler

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"hive/config"
	"hive/internal/domain/entity"
	"hive/internal/domain/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	eventWriteWait  = 10 * time.Second
	eventPongWait   = 60 * time.Second
	eventPingPeriod = eventPongWait * 9 / 10
	eventBuffer     = 16
)

// SubscribeFunc registers an auth state listener and returns its unsubscribe function.
type SubscribeFunc func(userID uuid.UUID, listener service.AuthListener) (unsubscribe func())

// EventHub owns the websocket connections streaming auth state changes.
type EventHub struct {
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu     sync.Mutex
	conns  map[*websocket.Conn]struct{}
	closed bool
}

// NewEventHub creates a hub accepting the origins allowed by the CORS config.
func NewEventHub(cfg *config.Config, logger *slog.Logger) *EventHub {
	var origins []string
	if cfg != nil && cfg.CORS != nil {
		origins = cfg.CORS.AllowedOrigins
	}

	return &EventHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || len(origins) == 0 {
					return true
				}

				return slices.Contains(origins, "*") || slices.Contains(origins, origin)
			},
		},
		logger: logger,
		conns:  make(map[*websocket.Conn]struct{}),
	}
}

// Stream upgrades the request and forwards the events of userID until either
// side closes the connection.
func (h *EventHub) Stream(c echo.Context, userID uuid.UUID, subscribe SubscribeFunc) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already answered the request.
		h.logger.Warn("Websocket upgrade failed", slog.Any("error", err))

		return nil
	}
	if !h.register(conn) {
		_ = conn.Close()

		return nil
	}
	defer h.release(conn)

	events := make(chan entity.AuthEvent, eventBuffer)
	unsubscribe := subscribe(userID, func(event entity.AuthEvent) {
		select {
		case events <- event:
		default:
			h.logger.Warn("Dropping auth event for slow subscriber", slog.String("userID", userID.String()))
		}
	})
	defer unsubscribe()

	done := make(chan struct{})
	go h.readLoop(conn, done)

	ticker := time.NewTicker(eventPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return nil
		case event := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(eventWriteWait))
			if err := conn.WriteJSON(event); err != nil {
				h.logger.Debug("Websocket write failed", slog.Any("error", err))

				return nil
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(eventWriteWait)); err != nil {
				return nil
			}
		}
	}
}

// readLoop drains client frames so pongs and close frames are processed.
func (h *EventHub) readLoop(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	_ = conn.SetReadDeadline(time.Now().Add(eventPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(eventPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("Websocket closed unexpectedly", slog.Any("error", err))
			}

			return
		}
	}
}

func (h *EventHub) register(conn *websocket.Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.conns[conn] = struct{}{}

	return true
}

func (h *EventHub) release(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()

	_ = conn.Close()
}

// Close sends a going-away frame to every open connection and refuses new ones.
func (h *EventHub) Close(ctx context.Context) error {
	h.mu.Lock()
	h.closed = true
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	deadline := time.Now().Add(eventWriteWait)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for _, conn := range conns {
		_ = conn.WriteControl(websocket.CloseMessage, msg, deadline)
		_ = conn.Close()
	}

	h.logger.Info("Auth event hub closed", slog.Int("connections", len(conns)))

	return nil
}

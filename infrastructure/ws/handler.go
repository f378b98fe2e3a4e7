// Package ws carries live connections over gorilla/websocket.
// One read pump feeds commands to the broker, one write pump drains the connection sink.
package ws

import (
	"context"
	"encoding/json"
	"greeting-hub/auth"
	"greeting-hub/contract"
	"greeting-hub/domain"
	"greeting-hub/errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type Options struct {
	BufferSize     int
	WriteTimeout   time.Duration
	PongWait       time.Duration
	MaxMessageSize int64
}

func DefaultOptions() Options {
	return Options{
		BufferSize:     64,
		WriteTimeout:   10 * time.Second,
		PongWait:       60 * time.Second,
		MaxMessageSize: 64 * 1024,
	}
}

type Handler struct {
	log      *slog.Logger
	broker   contract.IBroker
	upgrader websocket.Upgrader
	opts     Options
}

func NewHandler(log *slog.Logger, broker contract.IBroker, opts Options) *Handler {
	return &Handler{
		log:    log,
		broker: broker,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(_ *http.Request) bool { return true },
		},
		opts: opts,
	}
}

// conn serializes writes, gorilla allows a single concurrent writer.
type conn struct {
	mu      sync.Mutex
	ws      *websocket.Conn
	timeout time.Duration
}

func (c *conn) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(c.timeout))
	return c.ws.WriteJSON(v)
}

func (c *conn) writeControl(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteControl(messageType, data, time.Now().Add(c.timeout))
}

// ServeHTTP authenticates before upgrading: a refused credential never becomes a websocket.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sink := NewSink(h.opts.BufferSize)
	connectionID, identity, err := h.broker.Connect(r.Context(), auth.Credential(r), sink)
	if err != nil {
		h.log.Debug("Websocket refused", "remote_addr", r.RemoteAddr, "error", err)
		http.Error(w, err.Error(), errors.HTTPStatus(err))
		return
	}
	defer h.broker.Disconnect(connectionID)

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", "user_id", identity.UserID, "error", err)
		return
	}
	c := &conn{ws: ws, timeout: h.opts.WriteTimeout}
	defer func() { _ = ws.Close() }()

	h.log.Info("Websocket connected", "connection_id", connectionID, "user_id", identity.UserID)
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go h.writePump(ctx, c, sink, connectionID)
	h.readPump(ctx, c, connectionID)
	h.log.Info("Websocket disconnected", "connection_id", connectionID, "user_id", identity.UserID)
}

func (h *Handler) readPump(ctx context.Context, c *conn, connectionID domain.ConnectionID) {
	c.ws.SetReadLimit(h.opts.MaxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(h.opts.PongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(h.opts.PongWait))
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("Websocket read failed", "connection_id", connectionID, "error", err)
			}
			return
		}

		cmd, err := DecodeCommand(data)
		if err != nil {
			h.reject(c, connectionID, commandType(data), err)
			continue
		}
		if err := h.broker.HandleCommand(ctx, connectionID, cmd); err != nil {
			h.reject(c, connectionID, cmd.Type(), err)
		}
	}
}

func (h *Handler) reject(c *conn, connectionID domain.ConnectionID, command domain.CommandType, err error) {
	h.log.Debug("Command rejected", "connection_id", connectionID, "command", command, "error", err)
	if werr := c.writeJSON(newErrorFrame(command, err)); werr != nil {
		h.log.Debug("Error reply not written", "connection_id", connectionID, "error", werr)
	}
}

// writePump is the only reader of the sink. It stops when the registry closes the sink
// or when the read side is gone.
func (h *Handler) writePump(ctx context.Context, c *conn, sink *Sink, connectionID domain.ConnectionID) {
	ping := time.NewTicker(h.opts.PongWait * 9 / 10)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-sink.Done():
			_ = c.writeControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "connection closed by server"))
			_ = c.ws.Close()
			return
		case e := <-sink.Events():
			if err := c.writeJSON(e); err != nil {
				h.log.Warn("Websocket write failed", "connection_id", connectionID, "kind", e.Kind(), "error", err)
				_ = c.ws.Close()
				return
			}
		case <-ping.C:
			if err := c.writeControl(websocket.PingMessage, nil); err != nil {
				_ = c.ws.Close()
				return
			}
		}
	}
}

func commandType(data []byte) domain.CommandType {
	var frame Frame
	_ = json.Unmarshal(data, &frame)
	return frame.Type
}

package ws

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jdmorgan/noughts/internal/model"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// A peer silent for this long is assumed dead and its connection
	// is torn down
	pongWait = 15 * time.Second

	// Ping interval; must be shorter than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Incoming frames only ever carry small control messages
	maxMessageSize = 512

	// Buffer size for outgoing events
	sendBufferSize = 64
)

// Client represents one live websocket connection. A connection delivers
// no events until the peer sends a register message binding it to a
// player id.
type Client struct {
	conn     *websocket.Conn
	registry *Registry
	logger   *slog.Logger

	// playerID is empty until the peer registers. Both fields are only
	// touched from the read pump.
	playerID model.PlayerID
	session  uint64

	send chan []byte
	done chan struct{}

	connectedAt time.Time
}

func newClient(conn *websocket.Conn, registry *Registry, logger *slog.Logger) *Client {
	return &Client{
		conn:        conn,
		registry:    registry,
		logger:      logger,
		send:        make(chan []byte, sendBufferSize),
		done:        make(chan struct{}),
		connectedAt: time.Now(),
	}
}

// enqueue offers a serialized event to the write pump without blocking.
// Returns false if the connection is closed or the buffer is full; the
// message is dropped in both cases.
func (c *Client) enqueue(msg []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *Client) closeConn() {
	_ = c.conn.Close()
}

// readPump consumes incoming frames until the connection dies. It owns the
// registry binding: registration happens here, and the entry is released
// on exit if this session still holds it.
func (c *Client) readPump() {
	defer func() {
		if c.playerID != "" {
			c.registry.Release(c.playerID, c.session)
		}
		close(c.done)
		_ = c.conn.Close()
		c.logger.Info("connection closed",
			slog.String("player_id", string(c.playerID)),
			slog.Duration("connection_duration", time.Since(c.connectedAt)))
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Warn("unexpected close",
					slog.String("player_id", string(c.playerID)),
					slog.String("error", err.Error()))
			}
			return
		}
		// Any inbound frame counts as liveness
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))

		var msg model.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.logger.Debug("discarding malformed frame", slog.String("error", err.Error()))
			continue
		}

		switch msg.Type {
		case model.EventRegister:
			c.register(msg.ID)
		default:
			// unknown tags are ignored
		}
	}
}

func (c *Client) register(id model.PlayerID) {
	if id == "" {
		return
	}
	// Re-registering under a different id releases the old binding first
	if c.playerID != "" && c.playerID != id {
		c.registry.Release(c.playerID, c.session)
	}
	c.playerID = id
	c.session = c.registry.Register(id, c)

	if data, err := json.Marshal(model.RegisterAckEvent()); err == nil {
		c.enqueue(data)
	}
}

// writePump serializes all writes to the connection: queued events and
// keepalive pings. Runs until the connection dies or the read pump signals
// done.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

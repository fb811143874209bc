// Package ws is the connection layer: websocket clients, the connection
// registry, the broadcast dispatcher, and the session gateway that routes
// inbound commands to rooms.
package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for game clients
	},
}

// Conn is a live client connection as the gateway sees it. Send is
// best-effort: false means the connection was not writable and the message
// was skipped.
type Conn interface {
	ID() string
	Send(data []byte) bool
}

// Client wraps a websocket connection with a buffered outbound queue so that
// broadcasts never interleave within a frame and never block the sender.
type Client struct {
	id   string
	conn *websocket.Conn
	gw   *Gateway
	send chan []byte

	mu     sync.Mutex
	closed bool
}

func newClient(conn *websocket.Conn, gw *Gateway) *Client {
	return &Client{
		id:   uuid.NewString(),
		conn: conn,
		gw:   gw,
		send: make(chan []byte, 64),
	}
}

// ID returns the connection's opaque identifier.
func (c *Client) ID() string { return c.id }

// Send queues a frame for delivery. A full queue or a closed connection
// drops the frame rather than blocking the caller.
func (c *Client) Send(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// close marks the client unwritable and releases the write pump.
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// readPump pumps inbound frames from the connection to the gateway. It owns
// disconnect detection: when the read side fails, the gateway is told the
// connection is gone.
func (c *Client) readPump() {
	defer func() {
		c.gw.HandleDisconnect(c)
		c.close()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().
					Err(err).
					Str("conn_id", c.id).
					Msg("WebSocket unexpected close error")
			} else {
				log.Debug().
					Err(err).
					Str("conn_id", c.id).
					Msg("WebSocket connection closed")
			}
			break
		}
		c.gw.HandleMessage(c, data)
	}
}

// writePump pumps queued frames to the connection, one frame per message,
// and keeps the connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ServeWS upgrades an HTTP request and hands the connection to the gateway.
func (g *Gateway) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	client := newClient(conn, g)
	log.Info().Str("conn_id", client.id).Msg("WebSocket connected")

	go client.writePump()
	go client.readPump()
}

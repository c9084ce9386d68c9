package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 16 * 1024
)

// Client is one websocket connection.
type Client struct {
	conn *websocket.Conn
	send chan []byte

	playerID string
	name     string
	roomID   string
}

// sendMessage marshals and queues one message; slow clients drop it.
func (c *Client) sendMessage(msg ServerMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- payload:
	default:
	}
}

func (c *Client) sendError(text string) {
	c.sendMessage(ServerMessage{Type: MsgError, Error: text})
}

// readPump decodes incoming messages and hands them to the hub. It exits on
// the first read error, which unregisters the client.
func (c *Client) readPump(ctx context.Context, hub *Hub) {
	defer func() {
		hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			c.sendError("malformed message")
			continue
		}
		hub.handleMessage(ctx, c, msg)
	}
}

// writePump drains the send queue onto the wire and keeps the connection
// alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
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

// ServeWS upgrades an HTTP request into a hub client.
func ServeWS(ctx context.Context, hub *Hub, upgrader websocket.Upgrader, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	playerID := r.URL.Query().Get("player_id")
	if playerID == "" {
		playerID = uuid.New().String()
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		name = playerID
	}

	client := &Client{
		conn:     conn,
		send:     make(chan []byte, 64),
		playerID: playerID,
		name:     name,
	}

	hub.register <- client
	go client.writePump()
	go client.readPump(ctx, hub)
}

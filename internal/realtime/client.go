package realtime

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/threadmind-dev/threadmind/internal/domain"
	"github.com/threadmind-dev/threadmind/internal/logger"
	"github.com/threadmind-dev/threadmind/internal/middleware/metrics"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client is one WebSocket connection with the identity of the logged-in user
// and the set of thread rooms it joined.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	user domain.UserRef

	// rooms is guarded by the hub mutex.
	rooms map[domain.ThreadId]bool
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
		metrics.WsConnectionClosed()
	}()
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.Debug("websocket closed unexpectedly", "user", c.user.Id, "error", err)
			}
			break
		}

		var ev Event
		if err := json.Unmarshal(message, &ev); err != nil {
			logger.Log.Debug("invalid websocket message", "user", c.user.Id, "error", err)
			continue
		}
		if ev.ThreadId == "" {
			continue
		}

		switch ev.Type {
		case EventJoinThread:
			c.hub.joinThread(c, ev.ThreadId)
		case EventLeaveThread:
			c.hub.leaveThread(c, ev.ThreadId)
		case EventUpdateThread:
			c.hub.updateThread(c, ev.ThreadId, ev.Content)
		default:
			logger.Log.Debug("unknown websocket event", "type", ev.Type)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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

// ServeWs upgrades the request and registers the connection for the given
// user. The caller authenticates before handing the request over.
func ServeWs(hub *Hub, user domain.UserRef, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		hub:   hub,
		conn:  conn,
		send:  make(chan []byte, 256),
		user:  user,
		rooms: make(map[domain.ThreadId]bool),
	}
	hub.register <- client
	metrics.WsConnectionOpened()

	go client.writePump()
	go client.readPump()
}

package services

import (
	"sync"

	"github.com/cardroom/gofish-backend/utils/logger"
	"github.com/gorilla/websocket"
)

type Client struct {
	userID uint
	gameID uint
	conn   *websocket.Conn
	send   chan []byte
	once   sync.Once
}

func (c *Client) Close() {
	c.once.Do(func() {
		close(c.send)
		c.conn.Close()
	})
}

// readPump only consumes the connection so close frames are noticed.
// Clients act through the HTTP API; the socket is downstream-only.
func (c *Client) readPump() {
	defer func() {
		hub.removeClient(c)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Infof("user %d disconnected from game %d", c.userID, c.gameID)
			} else {
				logger.Errorf("user %d read error: %v", c.userID, err)
			}
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Errorf("user %d write error: %v", c.userID, err)
			return
		}
	}
}

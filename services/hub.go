package services

import (
	"sync"

	"github.com/cardroom/gofish-backend/utils/logger"
	"gorm.io/gorm"
)

// Hub fans events out to websocket clients, grouped into per-game rooms so
// only a game's participants see its traffic. Broadcast never blocks: a
// client that cannot keep up is dropped.
type Hub struct {
	mu    sync.RWMutex
	rooms map[uint]map[*Client]bool
	db    *gorm.DB
}

var hub *Hub

// InitHub creates the process-wide hub.
func InitHub(db *gorm.DB) {
	hub = &Hub{
		rooms: make(map[uint]map[*Client]bool),
		db:    db,
	}
	logger.Info("websocket hub initialized")
}

func (h *Hub) addClient(c *Client) {
	h.mu.Lock()
	room, ok := h.rooms[c.gameID]
	if !ok {
		room = make(map[*Client]bool)
		h.rooms[c.gameID] = room
	}
	for old := range room {
		if old.userID == c.userID {
			old.Close()
			delete(room, old)
		}
	}
	room[c] = true
	h.mu.Unlock()

	go c.writePump()
	go c.readPump()

	logger.Infof("user %d joined game %d room", c.userID, c.gameID)
}

func (h *Hub) removeClient(c *Client) {
	h.mu.Lock()
	if room, ok := h.rooms[c.gameID]; ok {
		if room[c] {
			delete(room, c)
			c.Close()
		}
		if len(room) == 0 {
			delete(h.rooms, c.gameID)
		}
	}
	h.mu.Unlock()
}

func (h *Hub) broadcast(gameID uint, msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[gameID] {
		select {
		case c.send <- msg:
		default:
			logger.Errorf("user %d in game %d too slow, dropping connection", c.userID, c.gameID)
			go h.removeClient(c)
		}
	}
}

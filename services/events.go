package services

import (
	"encoding/json"

	"github.com/cardroom/gofish-backend/models"
	"github.com/cardroom/gofish-backend/utils/logger"
	"gorm.io/gorm"
)

// Event names pushed to game rooms.
const (
	EventPlayerJoined = "player:joined"
	EventGameStarted  = "game:started"
	EventAskResult    = "game:ask-result"
	EventBookClaimed  = "game:book-claimed"
	EventChatMessage  = "chat:message"
)

type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Announce records an event for the game and pushes it to the room.
// Fire-and-forget: the caller's state change has already committed, so a
// persistence or delivery failure is logged and swallowed — clients catch
// up from the event log on their next refresh.
func Announce(gameID uint, name string, data any) {
	msg, err := json.Marshal(envelope{Event: name, Data: data})
	if err != nil {
		logger.Errorf("marshal %s event for game %d: %v", name, gameID, err)
		return
	}

	payload, _ := json.Marshal(data)
	event := models.GameEvent{GameID: gameID, Name: name, Payload: payload}
	if err := hub.db.Create(&event).Error; err != nil {
		logger.Errorf("persist %s event for game %d: %v", name, gameID, err)
	}

	hub.broadcast(gameID, msg)
}

// RecentEvents returns the latest persisted events for a game, newest first.
func RecentEvents(db *gorm.DB, gameID uint, limit int) ([]models.GameEvent, error) {
	var events []models.GameEvent
	err := db.Where("game_id = ?", gameID).
		Order("id DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

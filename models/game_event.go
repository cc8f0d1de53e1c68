package models

import (
	"time"

	"gorm.io/datatypes"
)

// GameEvent is the append-only audit trail of everything broadcast to a
// game's room. Clients that reconnect replay recent events instead of
// waiting for the next push.
type GameEvent struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	GameID    uint           `gorm:"not null;index" json:"game_id"`
	Name      string         `gorm:"not null" json:"name"`
	Payload   datatypes.JSON `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}

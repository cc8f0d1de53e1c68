package models

import "time"

const (
	StateLobby  = "lobby"
	StateActive = "active"
)

type Game struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	CreatedBy         uint      `gorm:"not null" json:"created_by"`
	Name              string    `gorm:"not null" json:"name"`
	MaxPlayers        int       `gorm:"not null;default:4" json:"max_players"`
	State             string    `gorm:"not null;default:'lobby';index" json:"state"`
	CurrentTurnUserID *uint     `json:"current_turn_user_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

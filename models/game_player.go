package models

import "time"

// GamePlayer is a roster entry. Position is NULL in the lobby and becomes a
// dense 1..N turn ordering when the game starts.
type GamePlayer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GameID    uint      `gorm:"not null;uniqueIndex:idx_game_players_member" json:"game_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_game_players_member" json:"user_id"`
	Position  *int      `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

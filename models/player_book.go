package models

import "time"

// PlayerBook records a claimed four-of-a-kind. Append-only; the unique index
// makes claiming the same rank twice in one game impossible.
type PlayerBook struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GameID    uint      `gorm:"not null;uniqueIndex:idx_player_books_claim" json:"game_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_player_books_claim" json:"user_id"`
	Rank      string    `gorm:"size:2;not null;uniqueIndex:idx_player_books_claim" json:"rank"`
	CreatedAt time.Time `json:"created_at"`
}

package game

import (
	"time"

	"github.com/cardroom/gofish-backend/models"
	"gorm.io/gorm"
)

// HandCard is one card in a player's hand, catalog data resolved.
type HandCard struct {
	ID   uint   `json:"id"`
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// PlayerStats is a roster entry with live counts for the game board.
type PlayerStats struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	Position  *int   `json:"position"`
	CardCount int    `json:"card_count"`
	BookCount int    `json:"book_count"`
}

// BookEntry is a claimed book with the claimant's name resolved.
type BookEntry struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Rank      string    `json:"rank"`
	CreatedAt time.Time `json:"created_at"`
}

// CardsByOwner returns the cards held by an owner in catalog sort order.
// Pass models.DeckOwner to inspect the undealt deck.
func CardsByOwner(db *gorm.DB, gameID, ownerID uint) ([]HandCard, error) {
	var cards []HandCard
	err := db.Model(&models.GameCard{}).
		Select("game_cards.id, cards.rank, cards.suit").
		Joins("JOIN cards ON cards.id = game_cards.card_id").
		Where("game_cards.game_id = ? AND game_cards.owner_id = ?", gameID, ownerID).
		Order("cards.sort_order").
		Scan(&cards).Error
	return cards, err
}

// CountByOwner returns how many cards an owner holds.
func CountByOwner(db *gorm.DB, gameID, ownerID uint) (int64, error) {
	var count int64
	err := db.Model(&models.GameCard{}).
		Where("game_id = ? AND owner_id = ?", gameID, ownerID).
		Count(&count).Error
	return count, err
}

// DeckCount returns the number of undealt cards.
func DeckCount(db *gorm.DB, gameID uint) (int64, error) {
	return CountByOwner(db, gameID, models.DeckOwner)
}

// PlayerIDs returns the roster's user ids.
func PlayerIDs(db *gorm.DB, gameID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&models.GamePlayer{}).
		Where("game_id = ?", gameID).
		Order("id").
		Pluck("user_id", &ids).Error
	return ids, err
}

// IsPlayer reports whether a user is on the game's roster.
func IsPlayer(db *gorm.DB, gameID, userID uint) (bool, error) {
	var count int64
	err := db.Model(&models.GamePlayer{}).
		Where("game_id = ? AND user_id = ?", gameID, userID).
		Count(&count).Error
	return count > 0, err
}

// DISTINCT counts guard against row multiplication from the double join.
const playersWithStatsSQL = `
SELECT u.id AS user_id, u.username, gp.position,
       COUNT(DISTINCT gc.id) AS card_count,
       COUNT(DISTINCT pb.id) AS book_count
FROM game_players gp
JOIN users u ON u.id = gp.user_id
LEFT JOIN game_cards gc ON gc.game_id = gp.game_id AND gc.owner_id = u.id
LEFT JOIN player_books pb ON pb.game_id = gp.game_id AND pb.user_id = u.id
WHERE gp.game_id = ?
GROUP BY u.id, u.username, gp.position
ORDER BY gp.position NULLS LAST, u.id`

// PlayersWithStats returns the roster in turn order with live card and book
// counts. Players without a position (lobby) sort last.
func PlayersWithStats(db *gorm.DB, gameID uint) ([]PlayerStats, error) {
	var stats []PlayerStats
	err := db.Raw(playersWithStatsSQL, gameID).Scan(&stats).Error
	return stats, err
}

// BooksByGame returns every claimed book in claim order.
func BooksByGame(db *gorm.DB, gameID uint) ([]BookEntry, error) {
	var books []BookEntry
	err := db.Model(&models.PlayerBook{}).
		Select("player_books.id, player_books.user_id, users.username, player_books.rank, player_books.created_at").
		Joins("JOIN users ON users.id = player_books.user_id").
		Where("player_books.game_id = ?", gameID).
		Order("player_books.created_at, player_books.id").
		Scan(&books).Error
	return books, err
}

package game

import (
	"github.com/cardroom/gofish-backend/models"
	"gorm.io/gorm"
)

// ClaimBooks finds every rank the player holds all four cards of, records a
// PlayerBook for each and removes the four cards from play. Booked cards can
// never be asked for or drawn again. Runs inside the caller's transaction.
func ClaimBooks(tx *gorm.DB, gameID, userID uint) ([]string, error) {
	var ranks []string
	err := tx.Model(&models.GameCard{}).
		Joins("JOIN cards ON cards.id = game_cards.card_id").
		Where("game_cards.game_id = ? AND game_cards.owner_id = ?", gameID, userID).
		Group("cards.rank").
		Having("COUNT(*) = 4").
		Pluck("cards.rank", &ranks).Error
	if err != nil {
		return nil, err
	}

	for _, rank := range ranks {
		book := models.PlayerBook{GameID: gameID, UserID: userID, Rank: rank}
		if err := tx.Create(&book).Error; err != nil {
			return nil, err
		}
		matching := tx.Model(&models.Card{}).Select("id").Where("rank = ?", rank)
		err := tx.Where("game_id = ? AND owner_id = ? AND card_id IN (?)", gameID, userID, matching).
			Delete(&models.GameCard{}).Error
		if err != nil {
			return nil, err
		}
	}
	return ranks, nil
}

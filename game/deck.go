package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/cardroom/gofish-backend/models"
	"gorm.io/gorm"
)

// CreateDeck inserts one GameCard per catalog card, all deck-owned, with
// positions assigned from a uniform random permutation of 1..52. Not
// idempotent: callers must invoke it exactly once per game.
func CreateDeck(tx *gorm.DB, gameID uint) error {
	var catalog []models.Card
	if err := tx.Order("sort_order").Find(&catalog).Error; err != nil {
		return fmt.Errorf("load card catalog: %w", err)
	}
	if len(catalog) == 0 {
		return fmt.Errorf("card catalog is empty, run migrations")
	}

	perm := rand.Perm(len(catalog))
	deck := make([]models.GameCard, len(catalog))
	for i, c := range catalog {
		pos := perm[i] + 1
		deck[i] = models.GameCard{
			GameID:   gameID,
			CardID:   c.ID,
			OwnerID:  models.DeckOwner,
			Position: &pos,
		}
	}
	return tx.Create(&deck).Error
}

// CardsFromDeck returns up to n deck-owned cards in draw order.
func CardsFromDeck(tx *gorm.DB, gameID uint, n int) ([]models.GameCard, error) {
	var cards []models.GameCard
	err := tx.Where("game_id = ? AND owner_id = ?", gameID, models.DeckOwner).
		Order("position").
		Limit(n).
		Find(&cards).Error
	return cards, err
}

// DealCards hands the given card rows to a player, clearing their deck
// positions. Used only during the start-game deal, where the caller already
// holds the surrounding transaction.
func DealCards(tx *gorm.DB, cardIDs []uint, ownerID uint) error {
	return tx.Model(&models.GameCard{}).
		Where("id IN ?", cardIDs).
		Updates(map[string]any{"owner_id": ownerID, "position": nil}).Error
}

// DrawCard claims the lowest-position deck card for a player. The claim is a
// guarded update on owner_id, so two concurrent draws can never win the same
// card; the loser just moves on to the next one. Returns false with no error
// when the deck is empty — callers treat that as a normal outcome.
func DrawCard(tx *gorm.DB, gameID, playerID uint) (bool, error) {
	for {
		var gc models.GameCard
		err := tx.Where("game_id = ? AND owner_id = ?", gameID, models.DeckOwner).
			Order("position").
			First(&gc).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}

		res := tx.Model(&models.GameCard{}).
			Where("id = ? AND owner_id = ?", gc.ID, models.DeckOwner).
			Updates(map[string]any{"owner_id": playerID, "position": nil})
		if res.Error != nil {
			return false, res.Error
		}
		if res.RowsAffected == 1 {
			return true, nil
		}
		// Another draw claimed this card first; retry with the next one.
	}
}

package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/cardroom/gofish-backend/models"
	"gorm.io/gorm"
)

// CardsPerPlayer is the initial hand size.
const CardsPerPlayer = 7

// AskResult is the outcome of a single ask-for-cards action.
type AskResult struct {
	Success       bool     `json:"success"`
	CardsReceived int      `json:"cardsReceived"`
	DrewCard      bool     `json:"drewCard"`
	BooksClaimed  []string `json:"booksClaimed"`
}

// StartGame moves a lobby game to active: it creates the shuffled deck,
// deals CardsPerPlayer cards to every player and assigns turn positions.
// One shuffle of the roster drives both the deal order and the seating:
// the player at shuffled index i receives hand i and position i+1, and the
// player at index 0 gets the first turn. The whole sequence runs in a single
// transaction, so a failed start leaves the game in the lobby with no deck.
func StartGame(db *gorm.DB, gameID uint) (uint, error) {
	var firstPlayerID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		// Guarded state flip, same discipline as DrawCard's claim: of two
		// concurrent starts only one sees the row change, the loser aborts
		// instead of dealing a second deck. Losing the row lock race also
		// serializes starts against concurrent joins. A failure in any
		// later step rolls the flip back with the rest of the transaction.
		res := tx.Model(&models.Game{}).
			Where("id = ? AND state = ?", gameID, models.StateLobby).
			Update("state", models.StateActive)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var g models.Game
			if err := tx.First(&g, gameID).Error; err != nil {
				return fmt.Errorf("load game %d: %w", gameID, err)
			}
			return ErrGameNotLobby
		}

		playerIDs, err := PlayerIDs(tx, gameID)
		if err != nil {
			return err
		}
		if len(playerIDs) < 2 {
			return ErrInsufficientPlayers
		}

		if err := CreateDeck(tx, gameID); err != nil {
			return err
		}

		rand.Shuffle(len(playerIDs), func(i, j int) {
			playerIDs[i], playerIDs[j] = playerIDs[j], playerIDs[i]
		})

		deckCards, err := CardsFromDeck(tx, gameID, CardsPerPlayer*len(playerIDs))
		if err != nil {
			return err
		}
		if len(deckCards) < CardsPerPlayer*len(playerIDs) {
			return fmt.Errorf("deck holds %d cards, %d players need %d",
				len(deckCards), len(playerIDs), CardsPerPlayer*len(playerIDs))
		}

		for i, playerID := range playerIDs {
			hand := deckCards[i*CardsPerPlayer : (i+1)*CardsPerPlayer]
			ids := make([]uint, len(hand))
			for j, gc := range hand {
				ids[j] = gc.ID
			}
			if err := DealCards(tx, ids, playerID); err != nil {
				return err
			}
			err := tx.Model(&models.GamePlayer{}).
				Where("game_id = ? AND user_id = ?", gameID, playerID).
				Update("position", i+1).Error
			if err != nil {
				return err
			}
		}

		firstPlayerID = playerIDs[0]
		return tx.Model(&models.Game{}).
			Where("id = ?", gameID).
			Update("current_turn_user_id", firstPlayerID).Error
	})
	if err != nil {
		return 0, err
	}
	return firstPlayerID, nil
}

// AskForCards resolves one ask: every card of the requested rank held by the
// target moves to the asker in a single update, or — when the target has
// none — the asker goes fishing for one card from the deck. Any rank the
// asker then holds all four of is claimed as a book. The primitive does not
// know or care whose turn it is; turn enforcement sits with the caller.
func AskForCards(db *gorm.DB, gameID, askerID, targetID uint, rank string) (AskResult, error) {
	var result AskResult
	err := db.Transaction(func(tx *gorm.DB) error {
		matching := tx.Model(&models.Card{}).Select("id").Where("rank = ?", rank)
		res := tx.Model(&models.GameCard{}).
			Where("game_id = ? AND owner_id = ? AND card_id IN (?)", gameID, targetID, matching).
			Update("owner_id", askerID)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			result.Success = true
			result.CardsReceived = int(res.RowsAffected)
		} else {
			drew, err := DrawCard(tx, gameID, askerID)
			if err != nil {
				return err
			}
			result.DrewCard = drew
		}

		books, err := ClaimBooks(tx, gameID, askerID)
		if err != nil {
			return err
		}
		result.BooksClaimed = books
		return nil
	})
	if err != nil {
		return AskResult{}, err
	}
	return result, nil
}

// AdvanceTurn moves the current turn to the next occupied position, wrapping
// from N back to 1, and returns the new turn holder. Callers invoke it after
// a missed ask; a successful ask keeps the turn.
func AdvanceTurn(db *gorm.DB, gameID uint) (uint, error) {
	var nextID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		var g models.Game
		if err := tx.First(&g, gameID).Error; err != nil {
			return fmt.Errorf("load game %d: %w", gameID, err)
		}
		if g.State != models.StateActive || g.CurrentTurnUserID == nil {
			return ErrGameNotActive
		}

		var players []models.GamePlayer
		err := tx.Where("game_id = ? AND position IS NOT NULL", gameID).
			Order("position").
			Find(&players).Error
		if err != nil {
			return err
		}
		if len(players) == 0 {
			return ErrGameNotActive
		}

		next := players[0].UserID
		for i, p := range players {
			if p.UserID == *g.CurrentTurnUserID {
				next = players[(i+1)%len(players)].UserID
				break
			}
		}
		nextID = next
		return tx.Model(&g).Update("current_turn_user_id", next).Error
	})
	if err != nil {
		return 0, err
	}
	return nextID, nil
}

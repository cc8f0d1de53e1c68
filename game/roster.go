package game

import (
	"fmt"
	"time"

	"github.com/cardroom/gofish-backend/models"
	"gorm.io/gorm"
)

// AddPlayer puts a user on a lobby game's roster. The guarded touch of the
// game row takes its lock and re-verifies the lobby state, so concurrent
// joins serialize and the capacity check counts every committed roster row;
// a join racing a start either finishes before the deal or is rejected.
func AddPlayer(db *gorm.DB, gameID, userID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Game{}).
			Where("id = ? AND state = ?", gameID, models.StateLobby).
			Update("updated_at", time.Now())
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

		var g models.Game
		if err := tx.First(&g, gameID).Error; err != nil {
			return err
		}
		ids, err := PlayerIDs(tx, gameID)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if id == userID {
				return ErrAlreadyJoined
			}
		}
		if len(ids) >= g.MaxPlayers {
			return ErrGameFull
		}
		return tx.Create(&models.GamePlayer{GameID: gameID, UserID: userID}).Error
	})
}

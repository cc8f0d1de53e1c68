package game

import (
	"fmt"
	"testing"

	"github.com/cardroom/gofish-backend/config"
	"github.com/cardroom/gofish-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the full schema and
// seeded catalog. A single connection keeps the shared memory database
// alive and serializes writers the way Postgres row locks would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

func createUsers(t *testing.T, db *gorm.DB, n int) []models.User {
	t.Helper()
	users := make([]models.User, n)
	for i := range users {
		users[i] = models.User{Username: fmt.Sprintf("player%d", i+1)}
	}
	require.NoError(t, db.Create(&users).Error)
	return users
}

func createGame(t *testing.T, db *gorm.DB, users []models.User) models.Game {
	t.Helper()
	g := models.Game{
		CreatedBy:  users[0].ID,
		Name:       "test-table",
		MaxPlayers: 6,
		State:      models.StateLobby,
	}
	require.NoError(t, db.Create(&g).Error)
	for _, u := range users {
		require.NoError(t, db.Create(&models.GamePlayer{GameID: g.ID, UserID: u.ID}).Error)
	}
	return g
}

// activateGame flips a lobby game to active with positions assigned in
// roster order and the first user on turn, without dealing any cards.
// Ask tests build hands explicitly instead of going through StartGame.
func activateGame(t *testing.T, db *gorm.DB, g models.Game, users []models.User) {
	t.Helper()
	for i, u := range users {
		err := db.Model(&models.GamePlayer{}).
			Where("game_id = ? AND user_id = ?", g.ID, u.ID).
			Update("position", i+1).Error
		require.NoError(t, err)
	}
	err := db.Model(&models.Game{}).Where("id = ?", g.ID).Updates(map[string]any{
		"state":                models.StateActive,
		"current_turn_user_id": users[0].ID,
	}).Error
	require.NoError(t, err)
}

// giveCard puts a specific catalog card into an owner's hand.
func giveCard(t *testing.T, db *gorm.DB, gameID, ownerID uint, rank, suit string) models.GameCard {
	t.Helper()
	var card models.Card
	require.NoError(t, db.Where("rank = ? AND suit = ?", rank, suit).First(&card).Error)
	gc := models.GameCard{GameID: gameID, CardID: card.ID, OwnerID: ownerID}
	require.NoError(t, db.Create(&gc).Error)
	return gc
}

// deckCard puts a specific catalog card into the deck at a position.
func deckCard(t *testing.T, db *gorm.DB, gameID uint, rank, suit string, position int) models.GameCard {
	t.Helper()
	var card models.Card
	require.NoError(t, db.Where("rank = ? AND suit = ?", rank, suit).First(&card).Error)
	gc := models.GameCard{GameID: gameID, CardID: card.ID, OwnerID: models.DeckOwner, Position: &position}
	require.NoError(t, db.Create(&gc).Error)
	return gc
}

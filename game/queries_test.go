package game

import (
	"testing"

	"github.com/cardroom/gofish-backend/models"
	"github.com/stretchr/testify/require"
)

func TestCardsByOwnerFollowsCatalogOrder(t *testing.T) {
	db := newTestDB(t)
	users := createUsers(t, db, 2)
	g := createGame(t, db, users)

	giveCard(t, db, g.ID, users[0].ID, "K", "spades")
	giveCard(t, db, g.ID, users[0].ID, "A", "hearts")
	giveCard(t, db, g.ID, users[0].ID, "7", "clubs")
	giveCard(t, db, g.ID, users[0].ID, "7", "hearts")

	hand, err := CardsByOwner(db, g.ID, users[0].ID)
	require.NoError(t, err)
	require.Len(t, hand, 4)
	require.Equal(t, "A", hand[0].Rank)
	require.Equal(t, "7", hand[1].Rank)
	require.Equal(t, "hearts", hand[1].Suit)
	require.Equal(t, "7", hand[2].Rank)
	require.Equal(t, "clubs", hand[2].Suit)
	require.Equal(t, "K", hand[3].Rank)
}

func TestPlayersWithStatsCountsAndOrder(t *testing.T) {
	db := newTestDB(t)
	users := createUsers(t, db, 3)
	g := createGame(t, db, users)

	// Two seated players plus a third still without a position.
	require.NoError(t, db.Model(&models.GamePlayer{}).
		Where("game_id = ? AND user_id = ?", g.ID, users[0].ID).
		Update("position", 2).Error)
	require.NoError(t, db.Model(&models.GamePlayer{}).
		Where("game_id = ? AND user_id = ?", g.ID, users[1].ID).
		Update("position", 1).Error)

	giveCard(t, db, g.ID, users[0].ID, "7", "hearts")
	giveCard(t, db, g.ID, users[0].ID, "7", "clubs")
	giveCard(t, db, g.ID, users[1].ID, "A", "spades")
	require.NoError(t, db.Create(&models.PlayerBook{GameID: g.ID, UserID: users[1].ID, Rank: "Q"}).Error)

	stats, err := PlayersWithStats(db, g.ID)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	// Turn order first, the unseated player last.
	require.Equal(t, users[1].ID, stats[0].UserID)
	require.Equal(t, 1, *stats[0].Position)
	require.Equal(t, 1, stats[0].CardCount)
	require.Equal(t, 1, stats[0].BookCount)

	require.Equal(t, users[0].ID, stats[1].UserID)
	require.Equal(t, 2, stats[1].CardCount)
	require.Equal(t, 0, stats[1].BookCount)

	require.Equal(t, users[2].ID, stats[2].UserID)
	require.Nil(t, stats[2].Position)
	require.Equal(t, 0, stats[2].CardCount)
}

func TestBooksByGameInClaimOrder(t *testing.T) {
	db := newTestDB(t)
	users := createUsers(t, db, 2)
	g := createGame(t, db, users)

	require.NoError(t, db.Create(&models.PlayerBook{GameID: g.ID, UserID: users[1].ID, Rank: "3"}).Error)
	require.NoError(t, db.Create(&models.PlayerBook{GameID: g.ID, UserID: users[0].ID, Rank: "J"}).Error)

	books, err := BooksByGame(db, g.ID)
	require.NoError(t, err)
	require.Len(t, books, 2)
	require.Equal(t, "3", books[0].Rank)
	require.Equal(t, "player2", books[0].Username)
	require.Equal(t, "J", books[1].Rank)
	require.Equal(t, "player1", books[1].Username)
}

func TestIsPlayer(t *testing.T) {
	db := newTestDB(t)
	users := createUsers(t, db, 3)
	g := createGame(t, db, users[:2])

	member, err := IsPlayer(db, g.ID, users[0].ID)
	require.NoError(t, err)
	require.True(t, member)

	member, err = IsPlayer(db, g.ID, users[2].ID)
	require.NoError(t, err)
	require.False(t, member)
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/cardroom/gofish-backend/config"
	"github.com/cardroom/gofish-backend/game"
	"github.com/cardroom/gofish-backend/models"
	"github.com/cardroom/gofish-backend/services"
	"github.com/cardroom/gofish-backend/utils/logger"
	"github.com/cardroom/gofish-backend/utils/names"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GameListing is a game row with its roster size, for the lobby screen.
type GameListing struct {
	models.Game
	PlayerCount int `json:"player_count"`
}

const listGamesSQL = `
SELECT g.*, COUNT(gp.id) AS player_count
FROM games g
LEFT JOIN game_players gp ON gp.game_id = g.id
WHERE g.state = ?
GROUP BY g.id
ORDER BY g.created_at DESC
LIMIT 50`

// ListGames returns games in the requested state (default: joinable lobbies)
func ListGames(c *gin.Context) {
	state := c.DefaultQuery("state", models.StateLobby)
	if state != models.StateLobby && state != models.StateActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid state"})
		return
	}

	var games []GameListing
	if err := config.DB.Raw(listGamesSQL, state).Scan(&games).Error; err != nil {
		logger.Errorf("list games: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, games)
}

// CreateGame creates a lobby game and joins the creator as its first player
func CreateGame(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Name       string `json:"name"`
		MaxPlayers int    `json:"max_players"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		req.Name = names.Generate()
	}
	if req.MaxPlayers == 0 {
		req.MaxPlayers = 4
	}
	if req.MaxPlayers < 2 || req.MaxPlayers > 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "max_players must be between 2 and 6"})
		return
	}

	logger.Infof("create game request %q, %d players by %d", req.Name, req.MaxPlayers, userID)

	g := models.Game{
		CreatedBy:  userID,
		Name:       req.Name,
		MaxPlayers: req.MaxPlayers,
		State:      models.StateLobby,
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&g).Error; err != nil {
			return err
		}
		return tx.Create(&models.GamePlayer{GameID: g.ID, UserID: userID}).Error
	})
	if err != nil {
		logger.Errorf("create game: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	logger.Infof("game created: %d", g.ID)
	c.JSON(http.StatusCreated, g)
}

// GetGame returns the full view for the game screen: the game, the caller's
// hand, remaining deck size, roster stats and claimed books
func GetGame(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	var g models.Game
	if err := config.DB.First(&g, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	cards, err := game.CardsByOwner(config.DB, gameID, userID)
	if err != nil {
		logger.Errorf("load game %d hand: %v", gameID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	deckCount, err := game.DeckCount(config.DB, gameID)
	if err != nil {
		logger.Errorf("load game %d deck count: %v", gameID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	players, err := game.PlayersWithStats(config.DB, gameID)
	if err != nil {
		logger.Errorf("load game %d players: %v", gameID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	books, err := game.BooksByGame(config.DB, gameID)
	if err != nil {
		logger.Errorf("load game %d books: %v", gameID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"game":       g,
		"cards":      cards,
		"deck_count": deckCount,
		"players":    players,
		"books":      books,
	})
}

// JoinGame adds the caller to a lobby game's roster
func JoinGame(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	err := game.AddPlayer(config.DB, gameID, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	case errors.Is(err, game.ErrGameNotLobby):
		c.JSON(http.StatusConflict, gin.H{"error": "Game has already started"})
		return
	case errors.Is(err, game.ErrAlreadyJoined):
		c.JSON(http.StatusConflict, gin.H{"error": "Already in this game"})
		return
	case errors.Is(err, game.ErrGameFull):
		c.JSON(http.StatusConflict, gin.H{"error": "Game is full"})
		return
	case err != nil:
		logger.Errorf("join game %d: %v", gameID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join game"})
		return
	}

	services.Announce(gameID, services.EventPlayerJoined, gin.H{"user_id": userID})
	c.JSON(http.StatusOK, gin.H{"message": "Joined game"})
}

// StartGame deals the deck and begins play
func StartGame(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}
	if !requireMember(c, gameID, userID) {
		return
	}

	firstPlayerID, err := game.StartGame(config.DB, gameID)
	switch {
	case errors.Is(err, game.ErrInsufficientPlayers):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	case errors.Is(err, game.ErrGameNotLobby):
		c.JSON(http.StatusConflict, gin.H{"error": "Game has already started"})
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	case err != nil:
		logger.Errorf("start game %d: %v", gameID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start game"})
		return
	}

	logger.Infof("game %d started, first turn user %d", gameID, firstPlayerID)
	services.Announce(gameID, services.EventGameStarted, gin.H{"first_player_id": firstPlayerID})
	c.JSON(http.StatusOK, gin.H{"first_player_id": firstPlayerID})
}

// AskForCards resolves one turn's ask and advances the turn on a miss
func AskForCards(c *gin.Context) {
	askerID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	var req struct {
		TargetUserID uint   `json:"target_user_id" binding:"required"`
		Rank         string `json:"rank" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidRank(req.Rank) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rank"})
		return
	}

	var g models.Game
	if err := config.DB.First(&g, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if g.State != models.StateActive {
		c.JSON(http.StatusConflict, gin.H{"error": "Game has not started"})
		return
	}
	if g.CurrentTurnUserID == nil || *g.CurrentTurnUserID != askerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your turn"})
		return
	}
	if !requireMember(c, gameID, req.TargetUserID) {
		return
	}

	result, err := game.AskForCards(config.DB, gameID, askerID, req.TargetUserID, req.Rank)
	if err != nil {
		logger.Errorf("ask in game %d: %v", gameID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve ask"})
		return
	}

	nextTurnUserID := askerID
	if !result.Success {
		// Go fish: the turn passes.
		nextTurnUserID, err = game.AdvanceTurn(config.DB, gameID)
		if err != nil {
			logger.Errorf("advance turn in game %d: %v", gameID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to advance turn"})
			return
		}
	}

	services.Announce(gameID, services.EventAskResult, gin.H{
		"asker_id":       askerID,
		"target_user_id": req.TargetUserID,
		"rank":           req.Rank,
		"result":         result,
		"next_turn_user": nextTurnUserID,
	})
	for _, rank := range result.BooksClaimed {
		services.Announce(gameID, services.EventBookClaimed, gin.H{
			"user_id": askerID,
			"rank":    rank,
		})
	}

	c.JSON(http.StatusOK, result)
}

// ListEvents returns the game's recent announcements, newest first
func ListEvents(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	events, err := services.RecentEvents(config.DB, gameID, 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// requireMember writes a 403 unless the user is on the game's roster.
func requireMember(c *gin.Context, gameID, userID uint) bool {
	member, err := game.IsPlayer(config.DB, gameID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return false
	}
	if !member {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not a player in this game"})
		return false
	}
	return true
}

package services

import (
	"net/http"
	"strconv"

	"github.com/cardroom/gofish-backend/game"
	"github.com/cardroom/gofish-backend/utils/logger"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket attaches a connection to its game's room. Only roster
// members may attach; everyone else is rejected before the upgrade.
func HandleWebSocket(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	member, err := game.IsPlayer(hub.db, uint(gameID), uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if !member {
		logger.Errorf("user %d tried to join game %d room without being a player", userID, gameID)
		c.JSON(http.StatusForbidden, gin.H{"error": "not a player in this game"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Errorf("websocket upgrade error: %v", err)
		return
	}

	hub.addClient(&Client{
		userID: uint(userID),
		gameID: uint(gameID),
		conn:   conn,
		send:   make(chan []byte, 32),
	})
}

package controllers

import (
	"net/http"
	"time"

	"github.com/cardroom/gofish-backend/config"
	"github.com/cardroom/gofish-backend/models"
	"github.com/cardroom/gofish-backend/services"
	"github.com/cardroom/gofish-backend/utils/logger"
	"github.com/gin-gonic/gin"
)

const chatLimit = 100

// ChatEntry is a chat message with the sender's name resolved.
type ChatEntry struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ListChat returns the game's recent chat messages, newest first
func ListChat(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	var messages []ChatEntry
	err := config.DB.Model(&models.ChatMessage{}).
		Select("chat_messages.id, chat_messages.user_id, users.username, chat_messages.message, chat_messages.created_at").
		Joins("JOIN users ON users.id = chat_messages.user_id").
		Where("chat_messages.game_id = ?", gameID).
		Order("chat_messages.created_at DESC").
		Limit(chatLimit).
		Scan(&messages).Error
	if err != nil {
		logger.Errorf("list chat for game %d: %v", gameID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// PostChat stores a message and pushes it to the game's room
func PostChat(c *gin.Context) {
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

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := models.ChatMessage{GameID: gameID, UserID: userID, Message: req.Message}
	if err := config.DB.Create(&msg).Error; err != nil {
		logger.Errorf("post chat in game %d: %v", gameID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post message"})
		return
	}

	services.Announce(gameID, services.EventChatMessage, msg)
	c.JSON(http.StatusCreated, msg)
}

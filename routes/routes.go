package routes

import (
	"github.com/cardroom/gofish-backend/controllers"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// ----------------------
	// User routes
	// ----------------------
	api.POST("/users", controllers.RegisterUser) // Register user
	api.GET("/users/:id", controllers.GetUser)   // Get user by id

	// ----------------------
	// Game routes
	// ----------------------
	api.GET("/games", controllers.ListGames)              // List games by state
	api.POST("/games", controllers.CreateGame)            // Create game (creator auto-joins)
	api.GET("/games/:id", controllers.GetGame)            // Game board view
	api.POST("/games/:id/join", controllers.JoinGame)     // Join a lobby game
	api.POST("/games/:id/start", controllers.StartGame)   // Deal and begin play
	api.POST("/games/:id/ask", controllers.AskForCards)   // Ask a player for a rank
	api.GET("/games/:id/events", controllers.ListEvents)  // Recent announcements

	// ----------------------
	// Chat routes
	// ----------------------
	api.GET("/games/:id/chat", controllers.ListChat)  // Recent messages
	api.POST("/games/:id/chat", controllers.PostChat) // Post message
}

package main

import (
	"log"
	"net/http"
	"time"

	"github.com/cardroom/gofish-backend/config"
	"github.com/cardroom/gofish-backend/routes"
	"github.com/cardroom/gofish-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// setupRouter initializes Gin routes and middleware
func setupRouter() *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST"},
		AllowHeaders:    []string{"Origin", "Content-Type", "X-User-ID"},
	}))

	// Setup REST routes
	routes.SetupRoutes(r)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	// WebSocket game room endpoint
	r.GET("/ws/:game_id", services.HandleWebSocket)

	return r
}

func main() {
	// Load env variables
	config.LoadEnv()

	// Connect to database
	db := config.SetupDatabase()

	// Initialize websocket hub
	services.InitHub(db)

	r := setupRouter()

	addr := ":" + config.Port()
	log.Printf("[INFO] Listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("[FATAL] Server error: %v", err)
	}
}

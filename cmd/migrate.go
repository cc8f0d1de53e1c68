package main

import (
	"log"

	"github.com/cardroom/gofish-backend/config"
)

func main() {
	config.LoadEnv()
	db := config.SetupDatabase() // connects + migrates + seeds the catalog
	_ = db
	log.Println("✅ Database migration completed successfully")
}

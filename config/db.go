package config

import (
	"fmt"
	"log"
	"os"

	"github.com/cardroom/gofish-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// SetupDatabase connects, migrates all models and seeds the card catalog.
func SetupDatabase() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("[FATAL] DATABASE_URL is required in .env")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("[FATAL] Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("[FATAL] Migration failed: %v", err)
	}

	DB = db
	fmt.Println("✅ Database connected and migrated")
	return db
}

// Migrate runs AutoMigrate for every model and seeds the 52-card catalog
// if it is not present yet. Safe to run repeatedly.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Card{},
		&models.Game{},
		&models.GamePlayer{},
		&models.GameCard{},
		&models.PlayerBook{},
		&models.ChatMessage{},
		&models.GameEvent{},
	)
	if err != nil {
		return err
	}
	return SeedCards(db)
}

// SeedCards inserts the catalog rows once. A partially seeded catalog is
// treated as corrupt rather than patched up.
func SeedCards(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Card{}).Count(&count).Error; err != nil {
		return err
	}
	catalog := models.CatalogCards()
	if count == int64(len(catalog)) {
		return nil
	}
	if count != 0 {
		return fmt.Errorf("card catalog has %d rows, expected 0 or %d", count, len(catalog))
	}
	return db.Create(&catalog).Error
}

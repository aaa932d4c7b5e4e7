package main

import (
	_ "embed"
	"encoding/json"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/prospect-evaluator/internal/models"
	"github.com/jstittsworth/prospect-evaluator/pkg/config"
	"github.com/jstittsworth/prospect-evaluator/pkg/database"
)

//go:embed seed_players.json
var seedPlayers []byte

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate [up|down|seed]")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	command := os.Args[1]

	switch command {
	case "up":
		if err := runMigrations(db); err != nil {
			logrus.Fatalf("Failed to run migrations: %v", err)
		}
		logrus.Info("Migrations completed successfully")

	case "down":
		if err := dropTables(db); err != nil {
			logrus.Fatalf("Failed to drop tables: %v", err)
		}
		logrus.Info("Tables dropped successfully")

	case "seed":
		if err := seedData(db); err != nil {
			logrus.Fatalf("Failed to seed data: %v", err)
		}
		logrus.Info("Data seeded successfully")

	default:
		log.Fatalf("Unknown command: %s", command)
	}
}

func runMigrations(db *database.DB) error {
	return db.AutoMigrate(&models.HistoricalPlayer{})
}

func dropTables(db *database.DB) error {
	return db.Migrator().DropTable(&models.HistoricalPlayer{})
}

// seedData loads the embedded reference population. Existing rows with the
// same name are left alone so reseeding is idempotent.
func seedData(db *database.DB) error {
	if err := runMigrations(db); err != nil {
		return err
	}

	var players []models.HistoricalPlayer
	if err := json.Unmarshal(seedPlayers, &players); err != nil {
		return err
	}

	seeded := 0
	for _, player := range players {
		var count int64
		db.Model(&models.HistoricalPlayer{}).Where("name = ?", player.Name).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&player).Error; err != nil {
			return err
		}
		seeded++
	}

	logrus.Infof("Seeded %d historical players (%d already present)", seeded, len(players)-seeded)
	return nil
}

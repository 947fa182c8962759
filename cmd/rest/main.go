package main

import (
	"context"
	"log"

	"jarvis-assistant-be/internal/bootstrap"
	"jarvis-assistant-be/internal/config"
	"jarvis-assistant-be/internal/model"
	"jarvis-assistant-be/internal/server"
	"jarvis-assistant-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database (only the pgvector store needs one)
	var gormDB *gorm.DB
	if cfg.Index.Store != "memory" {
		var err error
		gormDB, err = database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		if err := migrate(gormDB); err != nil {
			log.Panicf("Unable to migrate schema: %v", err)
		}
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}

func migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return err
	}
	return db.AutoMigrate(&model.DocumentEmbedding{})
}

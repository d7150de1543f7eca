package main

import (
	"log"

	"github.com/titobalza/apirest-starwars/config"
	"github.com/titobalza/apirest-starwars/database"
	"github.com/titobalza/apirest-starwars/routes"
	"github.com/titobalza/apirest-starwars/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	if err := utils.InitLogger(cfg.LogDir); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	log.Println("Connected to PostgreSQL")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	if err := database.Seed(db); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}
	log.Println("Catalog seeded (if needed)")

	r := routes.SetupRouter(db)

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

package main

import (
	"context"
	"log"

	"recipeshare/internal/config"
	"recipeshare/internal/db"
	"recipeshare/internal/model"
	"recipeshare/internal/repository"
	"recipeshare/internal/seed"
)

// Seeds the MySQL store with the sample recipes. The in-memory store is
// seeded by the server itself at startup.
func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	recipeRepo := repository.NewRecipeRepository(gormDB)
	ctx := context.Background()

	existing, err := recipeRepo.List(ctx, model.RecipeFilter{})
	if err != nil {
		log.Fatalf("Failed to list recipes: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Store already holds %d recipes, nothing to do", len(existing))
		return
	}

	log.Println("Seeding sample recipes into database...")
	seeded, err := seed.Recipes(ctx, recipeRepo)
	if err != nil {
		log.Fatalf("Failed to seed recipes: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Recipes created: %d", seeded)
}

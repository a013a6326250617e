package main

import (
	"log"

	"github.com/OpenShelf/library-backend/internal/catalog"
	"github.com/OpenShelf/library-backend/internal/db"
	"github.com/OpenShelf/library-backend/internal/seeds"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()
	catalog.Init()

	if err := seeds.SeedAll(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

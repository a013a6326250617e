package support

import (
	"log"

	"github.com/OpenShelf/library-backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "support"); err != nil {
		log.Fatal("Failed to ensure schema support: ", err)
	}

	if err := db.DB.AutoMigrate(&Ticket{}); err != nil {
		log.Fatal("Failed to auto-migrate support tables: ", err)
	}
}

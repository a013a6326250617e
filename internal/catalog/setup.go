package catalog

import (
	"log"

	"github.com/OpenShelf/library-backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "catalog"); err != nil {
		log.Fatal("Failed to ensure schema catalog: ", err)
	}

	if err := db.DB.AutoMigrate(&Book{}); err != nil {
		log.Fatal("Failed to auto-migrate catalog tables: ", err)
	}
}

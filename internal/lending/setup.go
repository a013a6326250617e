package lending

import (
	"log"

	"github.com/OpenShelf/library-backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "lending"); err != nil {
		log.Fatal("Failed to ensure schema lending: ", err)
	}

	if err := db.DB.AutoMigrate(&BorrowedBook{}); err != nil {
		log.Fatal("Failed to auto-migrate lending tables: ", err)
	}
}

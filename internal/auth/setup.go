package auth

import (
	"log"
	"time"

	"github.com/OpenShelf/library-backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "app_auth"); err != nil {
		log.Fatal("Failed to ensure schema app_auth: ", err)
	}

	if err := db.DB.AutoMigrate(&User{}, &PasswordReset{}); err != nil {
		log.Fatal("Failed to auto-migrate auth tables: ", err)
	}

	StartResetSweeper(10 * time.Minute)
}

// Command expire-resets deletes password-reset rows whose validity window
// has passed. The server runs the same sweep in the background; this is for
// operators who want to run hygiene out of band (e.g. from cron).
package main

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer db.Close()

	res, err := db.Exec(`DELETE FROM app_auth.password_resets WHERE expires_at <= now()`)
	if err != nil {
		log.Fatal("Failed to delete expired resets: ", err)
	}

	rows, _ := res.RowsAffected()
	log.Printf("Deleted %d expired password reset tokens", rows)
}

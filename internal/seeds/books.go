package seeds

import (
	_ "embed"
	"log"

	"github.com/OpenShelf/library-backend/internal/catalog"
	"github.com/OpenShelf/library-backend/internal/db"
	"github.com/OpenShelf/library-backend/internal/utils"
	"github.com/goccy/go-yaml"
)

//go:embed books.yaml
var booksYAML []byte

type bookSeed struct {
	Title  string  `yaml:"title"`
	Author string  `yaml:"author"`
	Type   string  `yaml:"type"`
	Price  float64 `yaml:"price"`
	Image  string  `yaml:"image"`
}

// SeedBooks loads the starter catalog. Existing title/author pairs are
// skipped so re-running the seeder is safe.
func SeedBooks() error {
	var entries []bookSeed
	if err := yaml.Unmarshal(booksYAML, &entries); err != nil {
		return err
	}

	created := 0
	for _, entry := range entries {
		var existing catalog.Book
		err := db.DB.First(&existing, "title = ? AND author = ?", entry.Title, entry.Author).Error
		if err == nil {
			continue
		}

		book := catalog.Book{
			ID:     utils.GenerateUUID(),
			Title:  entry.Title,
			Author: entry.Author,
			Type:   entry.Type,
			Price:  entry.Price,
			Image:  entry.Image,
		}
		if err := db.DB.Create(&book).Error; err != nil {
			return err
		}
		created++
	}

	log.Printf("Seeded %d books (%d already present)", created, len(entries)-created)
	return nil
}

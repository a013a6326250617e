package catalog

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/OpenShelf/library-backend/internal/db"
	"github.com/OpenShelf/library-backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type booksResponse struct {
	Books      []Book   `json:"books"`
	Categories []string `json:"categories"`
}

// ListBooksHandler serves both the admin and the user book listings:
// optional free-text search over title/author plus a category filter.
func ListBooksHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	query := db.DB.Model(&Book{})
	if q != "" {
		query = query.Where("title ILIKE ? OR author ILIKE ?", "%"+q+"%", "%"+q+"%")
	}
	if category != "" {
		query = query.Where("type = ?", category)
	}

	var books []Book
	if err := query.Find(&books).Error; err != nil {
		http.Error(w, "Failed to fetch books: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var categories []string
	if err := db.DB.Model(&Book{}).Distinct().Pluck("type", &categories).Error; err != nil {
		http.Error(w, "Failed to fetch categories: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(booksResponse{Books: books, Categories: categories})
}

type bookRequest struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
	Image  string  `json:"image"`
}

func CreateBookHandler(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.Author == "" || req.Type == "" {
		http.Error(w, "Please fill in all fields", http.StatusBadRequest)
		return
	}

	book := Book{
		ID:     utils.GenerateUUID(),
		Title:  req.Title,
		Author: req.Author,
		Type:   req.Type,
		Price:  req.Price,
		Image:  req.Image,
	}
	if err := db.DB.Create(&book).Error; err != nil {
		http.Error(w, "Failed to create book", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(book)
}

func UpdateBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "id")

	var book Book
	if err := db.DB.First(&book, "id = ?", bookID).Error; err != nil {
		http.Error(w, "Book not found", http.StatusNotFound)
		return
	}

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.Author == "" || req.Type == "" {
		http.Error(w, "Please fill in all fields", http.StatusBadRequest)
		return
	}

	updates := map[string]interface{}{
		"title":  req.Title,
		"author": req.Author,
		"type":   req.Type,
		"price":  req.Price,
		"image":  req.Image,
	}
	if err := db.DB.Model(&book).Updates(updates).Error; err != nil {
		http.Error(w, "Failed to update book", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(book)
}

func DeleteBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "id")

	res := db.DB.Delete(&Book{}, "id = ?", bookID)
	if res.Error != nil {
		http.Error(w, "Failed to delete book", http.StatusInternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		http.Error(w, "Book not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"deleted": bookID})
}

type CategoryCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// SortCategories orders category counts by name ascending using a collator,
// so ordering is stable regardless of database collation settings.
func SortCategories(categories []CategoryCount) {
	c := collate.New(language.English)
	sort.Slice(categories, func(i, j int) bool {
		return c.CompareString(categories[i].Type, categories[j].Type) < 0
	})
}

func CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	var categories []CategoryCount
	err := db.DB.Model(&Book{}).
		Select("type, count(*) as count").
		Group("type").
		Scan(&categories).Error
	if err != nil {
		http.Error(w, "Failed to fetch categories: "+err.Error(), http.StatusInternalServerError)
		return
	}

	SortCategories(categories)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(categories)
}

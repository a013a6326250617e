package catalog_test

import (
	"testing"

	"github.com/OpenShelf/library-backend/internal/catalog"
)

// TestSortCategories verifies the category-count view is ordered by category
// name ascending.
func TestSortCategories(t *testing.T) {
	categories := []catalog.CategoryCount{
		{Type: "Technology", Count: 2},
		{Type: "fiction", Count: 5},
		{Type: "History", Count: 1},
		{Type: "Science", Count: 3},
	}

	catalog.SortCategories(categories)

	want := []string{"fiction", "History", "Science", "Technology"}
	for i, name := range want {
		if categories[i].Type != name {
			t.Fatalf("position %d: expected %q, got %q (full order: %v)", i, name, categories[i].Type, categories)
		}
	}
}

func TestSortCategoriesEmpty(t *testing.T) {
	var categories []catalog.CategoryCount
	catalog.SortCategories(categories) // must not panic
	if len(categories) != 0 {
		t.Fatal("expected empty slice to stay empty")
	}
}

package lending

import (
	"encoding/json"
	"net/http"

	"github.com/OpenShelf/library-backend/internal/db"
	"github.com/OpenShelf/library-backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

func ListBorrowedBooksHandler(w http.ResponseWriter, r *http.Request) {
	var records []BorrowedBook
	if err := db.DB.Order("created_at DESC").Find(&records).Error; err != nil {
		http.Error(w, "Failed to fetch borrowed books: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

type borrowedBookRequest struct {
	StudentName string `json:"student_name"`
	StudentID   string `json:"student_id"`
	Year        string `json:"year"`
	BookTitle   string `json:"book_title"`
	BorrowDate  string `json:"borrow_date"`
	Status      string `json:"status"`
}

func (req borrowedBookRequest) validate() bool {
	return req.StudentName != "" && req.StudentID != "" && req.Year != "" &&
		req.BookTitle != "" && req.BorrowDate != "" && req.Status != ""
}

func CreateBorrowedBookHandler(w http.ResponseWriter, r *http.Request) {
	var req borrowedBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}
	if !req.validate() {
		http.Error(w, "Please fill in all fields", http.StatusBadRequest)
		return
	}

	record := BorrowedBook{
		ID:          utils.GenerateUUID(),
		StudentName: req.StudentName,
		StudentID:   req.StudentID,
		Year:        req.Year,
		BookTitle:   req.BookTitle,
		BorrowDate:  req.BorrowDate,
		Status:      req.Status,
	}
	if err := db.DB.Create(&record).Error; err != nil {
		http.Error(w, "Failed to create borrowed book record", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

func UpdateBorrowedBookHandler(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "id")

	var record BorrowedBook
	if err := db.DB.First(&record, "id = ?", recordID).Error; err != nil {
		http.Error(w, "Record not found", http.StatusNotFound)
		return
	}

	var req borrowedBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}
	if !req.validate() {
		http.Error(w, "Please fill in all fields", http.StatusBadRequest)
		return
	}

	updates := map[string]interface{}{
		"student_name": req.StudentName,
		"student_id":   req.StudentID,
		"year":         req.Year,
		"book_title":   req.BookTitle,
		"borrow_date":  req.BorrowDate,
		"status":       req.Status,
	}
	if err := db.DB.Model(&record).Updates(updates).Error; err != nil {
		http.Error(w, "Failed to update borrowed book record", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

func DeleteBorrowedBookHandler(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "id")

	res := db.DB.Delete(&BorrowedBook{}, "id = ?", recordID)
	if res.Error != nil {
		http.Error(w, "Failed to delete borrowed book record", http.StatusInternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		http.Error(w, "Record not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"deleted": recordID})
}

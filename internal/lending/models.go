package lending

import "time"

// BorrowedBook is one physical lending record. Status is free text entered
// by the administrator (e.g. "borrowed", "returned", "overdue"); the source
// system never validated allowed values and neither do we.
type BorrowedBook struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	StudentName string    `gorm:"not null" json:"student_name"`
	StudentID   string    `gorm:"not null" json:"student_id"`
	Year        string    `json:"year"`
	BookTitle   string    `gorm:"not null" json:"book_title"`
	BorrowDate  string    `json:"borrow_date"`
	Status      string    `gorm:"not null" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (BorrowedBook) TableName() string { return "lending.borrowed_books" }

package support

import "time"

// Ticket moves one way: open -> resolved. Resolution stays null until an
// administrator resolves it.
type Ticket struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	UserID      string     `gorm:"index;not null" json:"user_id"`
	IssueType   string     `gorm:"not null" json:"issue_type"`
	Description string     `gorm:"not null" json:"description"`
	Status      string     `gorm:"index;default:'open'" json:"status"`
	Resolution  *string    `json:"resolution"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`
}

func (Ticket) TableName() string { return "support.tickets" }

const (
	StatusOpen     = "open"
	StatusResolved = "resolved"
)

package auth

import "time"

type User struct {
	UserID         string    `gorm:"primaryKey" json:"user_id"`
	FullName       string    `gorm:"not null" json:"full_name"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Mobile         string    `gorm:"uniqueIndex;not null" json:"mobile"`
	Password       string    `json:"password" gorm:"-"`
	HashedPassword string    `json:"-"`
	Role           string    `gorm:"default:'user'" json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// PasswordReset is one outstanding forgot-password request. Rows are
// single-use and only valid while expires_at is in the future.
type PasswordReset struct {
	Token     string    `gorm:"primaryKey" json:"-"`
	Email     string    `gorm:"index;not null" json:"email"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
}

func (User) TableName() string          { return "app_auth.users" }
func (PasswordReset) TableName() string { return "app_auth.password_resets" }

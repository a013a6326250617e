package auth

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/OpenShelf/library-backend/internal/db"
	"github.com/OpenShelf/library-backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ResetTokenTTL is the validity window of a password-reset token.
const ResetTokenTTL = time.Hour

// ForgotPasswordHandler starts the recovery flow. The response is identical
// whether or not the email belongs to an account, so callers can't probe
// which addresses are registered.
func ForgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		http.Error(w, "Email is required", http.StatusBadRequest)
		return
	}

	var user User
	if err := db.DB.First(&user, "email = ?", req.Email).Error; err == nil {
		reset := PasswordReset{
			Token:     utils.GenerateToken(),
			Email:     req.Email,
			ExpiresAt: time.Now().Add(ResetTokenTTL),
		}
		if err := db.DB.Create(&reset).Error; err != nil {
			http.Error(w, "Failed to create reset request", http.StatusInternalServerError)
			return
		}

		// Delivery is out of band. A real deployment would email this link.
		log.Printf("Password reset link for %s: /reset-password/%s", req.Email, reset.Token)
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "If an account exists with this email, you will receive a password reset link.")
}

// ValidateResetTokenHandler lets the reset form check a token before
// prompting for a new password.
func ValidateResetTokenHandler(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var reset PasswordReset
	err := db.DB.First(&reset, "token = ? AND expires_at > ?", token, time.Now()).Error
	if err != nil {
		http.Error(w, "Invalid or expired token", http.StatusGone)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "Token is valid")
}

// ResetPasswordHandler consumes a token and rotates the account's password.
// The claim-delete and the password update run in one transaction: of two
// concurrent consumers exactly one deletes the row and wins, and no success
// response is sent before the new hash is committed.
func ResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req struct {
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}
	if req.Password == "" || req.ConfirmPassword == "" {
		http.Error(w, "Please fill in all fields", http.StatusBadRequest)
		return
	}
	if req.Password != req.ConfirmPassword {
		http.Error(w, "Passwords do not match", http.StatusBadRequest)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Server error hashing password", http.StatusInternalServerError)
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var reset PasswordReset
		if err := tx.First(&reset, "token = ? AND expires_at > ?", token, time.Now()).Error; err != nil {
			return gorm.ErrRecordNotFound
		}

		// Claim the token. RowsAffected of zero means another request got
		// here first; treat it the same as an unknown token.
		claim := tx.Delete(&PasswordReset{}, "token = ? AND expires_at > ?", token, time.Now())
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&User{}).
			Where("email = ?", reset.Email).
			Update("hashed_password", string(hashed)).Error
	})
	if err == gorm.ErrRecordNotFound {
		http.Error(w, "Invalid or expired token", http.StatusGone)
		return
	}
	if err != nil {
		http.Error(w, "Failed to reset password", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "Password updated successfully! Please login.")
}

// StartResetSweeper deletes expired reset rows in the background. Lookup-time
// expiry filtering is what guarantees correctness; this is hygiene so the
// table doesn't accumulate dead rows.
func StartResetSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			res := db.DB.Delete(&PasswordReset{}, "expires_at <= ?", time.Now())
			if res.Error != nil {
				log.Println("Reset sweeper error:", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("Reset sweeper removed %d expired tokens", res.RowsAffected)
			}
		}
	}()
}

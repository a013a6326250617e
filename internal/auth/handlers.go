package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/OpenShelf/library-backend/internal/db"
	"github.com/OpenShelf/library-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type signupRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Mobile          string `json:"mobile"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	AdminKey        string `json:"admin_key"`
}

func UserSignupHandler(w http.ResponseWriter, r *http.Request) {
	signup(w, r, "user")
}

func AdminSignupHandler(w http.ResponseWriter, r *http.Request) {
	signup(w, r, "admin")
}

func signup(w http.ResponseWriter, r *http.Request, role string) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if req.FullName == "" || req.Email == "" || req.Mobile == "" || req.Password == "" || req.ConfirmPassword == "" {
		http.Error(w, "Please fill in all fields", http.StatusBadRequest)
		return
	}

	if req.Password != req.ConfirmPassword {
		http.Error(w, "Passwords do not match", http.StatusBadRequest)
		return
	}

	if role == "admin" {
		expected := os.Getenv("ADMIN_REGISTRATION_KEY")
		if expected == "" {
			expected = "default-admin-key"
		}
		if req.AdminKey != expected {
			http.Error(w, "Invalid admin registration key", http.StatusForbidden)
			return
		}
	}

	// Email and mobile are globally unique across both roles. The unique
	// indexes are the backstop for two concurrent signups racing this check.
	var existing User
	err := db.DB.First(&existing, "email = ? OR mobile = ?", req.Email, req.Mobile).Error
	if err == nil {
		http.Error(w, "Email or mobile already registered", http.StatusConflict)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Server error hashing password", http.StatusInternalServerError)
		return
	}

	user := User{
		UserID:         utils.GenerateUUID(),
		FullName:       req.FullName,
		Email:          req.Email,
		Mobile:         req.Mobile,
		HashedPassword: string(hashed),
		Role:           role,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		// Unique index violation from a concurrent signup with the same
		// email or mobile.
		http.Error(w, "Email or mobile already registered", http.StatusConflict)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"user_id": user.UserID,
		"email":   user.Email,
		"role":    user.Role,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func UserLoginHandler(w http.ResponseWriter, r *http.Request) {
	login(w, r, "user")
}

func AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	login(w, r, "admin")
}

func login(w http.ResponseWriter, r *http.Request, role string) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, "Please fill in all fields", http.StatusBadRequest)
		return
	}

	// Lookup is by email AND the role fixed by the endpoint, so a user-role
	// account can never authenticate through the admin entry point. Unknown
	// account and wrong password produce the same generic response.
	var user User
	err := db.DB.First(&user, "email = ? AND role = ?", req.Email, role).Error
	if err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	session := Sessions.Create(user)
	http.SetCookie(w, sessionCookie(session.SessionID, int(SessionTTL.Seconds())))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"user_id":   user.UserID,
		"full_name": user.FullName,
		"role":      user.Role,
	})
}

func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("session_id")
	if err != nil {
		http.Error(w, "Couldn't find cookie", http.StatusUnauthorized)
		return
	}

	Sessions.Delete(cookie.Value)
	http.SetCookie(w, sessionCookie("", -1))

	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "Logout successful")
}

func sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     "session_id",
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   os.Getenv("PORT") != "",
	}
}

package support

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/OpenShelf/library-backend/internal/db"
	"github.com/OpenShelf/library-backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

func SubmitTicketHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: missing session in context", http.StatusUnauthorized)
		return
	}

	var req struct {
		IssueType   string `json:"issue_type"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}
	if req.IssueType == "" || req.Description == "" {
		http.Error(w, "Please fill all required fields", http.StatusBadRequest)
		return
	}

	ticket := Ticket{
		ID:          utils.GenerateUUID(),
		UserID:      session.UserID,
		IssueType:   req.IssueType,
		Description: req.Description,
		Status:      StatusOpen,
	}
	if err := db.DB.Create(&ticket).Error; err != nil {
		http.Error(w, "An error occurred while submitting your ticket", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ticket)
}

// MyTicketsHandler returns only the session owner's tickets. Ownership is
// enforced in the WHERE clause, not left to the caller.
func MyTicketsHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: missing session in context", http.StatusUnauthorized)
		return
	}

	var tickets []Ticket
	err := db.DB.
		Where("user_id = ?", session.UserID).
		Order("created_at DESC").
		Find(&tickets).Error
	if err != nil {
		http.Error(w, "Failed to fetch tickets: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tickets)
}

type adminTicket struct {
	Ticket
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

// AllTicketsHandler lists every ticket joined with the owner's identity for
// the admin support view, newest first.
func AllTicketsHandler(w http.ResponseWriter, r *http.Request) {
	var tickets []adminTicket
	err := db.DB.Model(&Ticket{}).
		Select("support.tickets.*, u.full_name AS user_name, u.email AS user_email").
		Joins("JOIN app_auth.users u ON u.user_id = support.tickets.user_id").
		Order("support.tickets.created_at DESC").
		Scan(&tickets).Error
	if err != nil {
		http.Error(w, "Failed to fetch tickets: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tickets)
}

func ResolveTicketHandler(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "id")

	var req struct {
		Resolution string `json:"resolution"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}
	if req.Resolution == "" {
		http.Error(w, "Resolution text is required", http.StatusBadRequest)
		return
	}

	var ticket Ticket
	if err := db.DB.First(&ticket, "id = ?", ticketID).Error; err != nil {
		http.Error(w, "Ticket not found", http.StatusNotFound)
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":      StatusResolved,
		"resolution":  req.Resolution,
		"resolved_at": now,
		"updated_at":  now,
	}
	if err := db.DB.Model(&ticket).Updates(updates).Error; err != nil {
		http.Error(w, "Failed to resolve ticket", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ticket)
}

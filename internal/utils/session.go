package utils

import "time"

// SessionData is the server-held view of one authenticated browsing session.
// It is bound to exactly one role and never written to durable storage.
type SessionData struct {
	SessionID string
	UserID    string
	Role      string
	Name      string
	Email     string
	ExpiresAt time.Time
}

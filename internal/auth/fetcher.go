package auth

import (
	"github.com/OpenShelf/library-backend/internal/utils"
)

// SessionInfo adapts the in-memory session store to middleware.SessionFetcher.
type SessionInfo struct{}

func (si SessionInfo) FindSessionByID(id string) (utils.SessionData, error) {
	return Sessions.Get(id)
}

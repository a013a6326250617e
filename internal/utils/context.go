package utils

import (
	"context"
)

type contextKey string

const ContextSessionKey contextKey = "session"

func GetSessionFromContext(ctx context.Context) (SessionData, bool) {
	session, ok := ctx.Value(ContextSessionKey).(SessionData)
	return session, ok
}

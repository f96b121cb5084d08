package session

import "context"

type ctxKey struct{}

// WithSessionID stamps the request context with the caller's session
// ID so the gateway's unauthorized hook can find the session to tear
// down.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sessionID)
}

// SessionIDFromContext returns the stamped session ID, if any.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(ctxKey{}).(string)
	return sid, ok && sid != ""
}

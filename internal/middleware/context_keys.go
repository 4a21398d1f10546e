// Context keys and getters for request-scoped values (request_id, user_id, role).
package middleware

import "context"

type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyUserID    contextKey = "user_id" // set by AuthMiddleware
	ContextKeyRole      contextKey = "role"    // set by AuthMiddleware
)

// UserIDFrom returns the authenticated admin ID from the context (after AuthMiddleware).
func UserIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeyUserID).(string); ok {
		return v
	}
	return ""
}

// RoleFrom returns the authenticated role from the context (after AuthMiddleware).
func RoleFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeyRole).(string); ok {
		return v
	}
	return ""
}

// RequestIDFrom returns the X-Request-ID from the context.
func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return v
	}
	return ""
}

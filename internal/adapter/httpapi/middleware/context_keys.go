package middleware

// ContextKey is a dedicated type for context keys to avoid collisions.
type ContextKey string

const (
	UserIDCtxKey    = ContextKey("user_id")
	UserRoleCtxKey  = ContextKey("user_role")
	RequestIDCtxKey = ContextKey("request_id")
)

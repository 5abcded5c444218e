package auth

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// IdentityKey is the context key for storing the caller identity.
	IdentityKey contextKey = "identity"
	// AdminSessionKey is the context key for the advisory admin session flag.
	AdminSessionKey contextKey = "admin_session"
)

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

// Identity extracts the caller identity from the context.
// Returns empty string for anonymous callers.
func Identity(ctx context.Context) string {
	identity, _ := ctx.Value(IdentityKey).(string)
	return identity
}

// WithAdminSession records whether the caller's token carries the passcode
// session flag.
func WithAdminSession(ctx context.Context, active bool) context.Context {
	return context.WithValue(ctx, AdminSessionKey, active)
}

// AdminSession reports the passcode session flag. It is display state only
// and never grants rights.
func AdminSession(ctx context.Context) bool {
	active, _ := ctx.Value(AdminSessionKey).(bool)
	return active
}

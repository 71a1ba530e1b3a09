package tenant

import "context"

// ctxKey is an unexported type for context keys defined in this package.
type ctxKey struct{}

// WithTable stores the application table ID in the context.
func WithTable(ctx context.Context, tableID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, tableID)
}

// FromContext retrieves the application table ID stored in the context.
// Empty string if missing.
func FromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKey{}).(string)
	return v
}

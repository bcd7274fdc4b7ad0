package auth

import "context"

type contextKey struct{ name string }

var claimsContextKey = &contextKey{name: "auth_claims"}

// WithClaims returns a context carrying verified session claims.
func WithClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext returns the verified session claims, if the request
// passed the auth gate.
func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(Claims)
	return claims, ok
}

package auth

import (
	"net/http"

	"github.com/dmitrymomot/partstock/modules/users"
	"github.com/dmitrymomot/partstock/pkg/response"
)

// RequireRights builds a guard that rejects the request with 403 unless the
// rights snapshot in the session claims satisfies the predicate. Must be
// mounted behind the auth gate middleware.
func RequireRights(allowed func(users.Rights) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok || !allowed(claims.User.Rights) {
				response.Error(w, response.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Predefined guards for the four rights flags.
var (
	CanModifyParts = RequireRights(func(r users.Rights) bool { return r.CanModifyParts })
	CanDeleteParts = RequireRights(func(r users.Rights) bool { return r.CanDeleteParts })
	CanModifyUsers = RequireRights(func(r users.Rights) bool { return r.CanModifyUsers })
	CanDeleteUsers = RequireRights(func(r users.Rights) bool { return r.CanDeleteUsers })
)

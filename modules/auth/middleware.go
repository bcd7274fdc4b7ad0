package auth

import (
	"net/http"

	"github.com/dmitrymomot/partstock/pkg/response"
)

// DefaultTokenHeader is the request header carrying the session token.
const DefaultTokenHeader = "X-Auth-Token"

var (
	errNoTokenResponse = response.NewHTTPError(
		http.StatusUnauthorized, "no_token", "Access denied. No token provided.")
	errInvalidTokenResponse = response.NewHTTPError(
		http.StatusUnauthorized, "invalid_token", "Invalid access token.")
)

// Middleware is the auth gate: it extracts the token from the configured
// header, verifies the signature, checks the token ID against the live-token
// index, and attaches the claims to the request context. Fail-closed: any
// failure rejects the request with 401 and no further detail.
func (s *Service) Middleware(header string) func(http.Handler) http.Handler {
	if header == "" {
		header = DefaultTokenHeader
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(header)
			if token == "" {
				response.Error(w, errNoTokenResponse)
				return
			}

			claims, err := s.Verify(token)
			if err != nil {
				response.Error(w, errInvalidTokenResponse)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

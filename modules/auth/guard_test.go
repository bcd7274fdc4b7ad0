package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/partstock/modules/auth"
	"github.com/dmitrymomot/partstock/modules/users"
)

func TestRequireRights(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	guard := auth.CanDeleteParts(next)

	call := func(claims *auth.Claims) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		if claims != nil {
			req = req.WithContext(auth.WithClaims(req.Context(), *claims))
		}
		rec := httptest.NewRecorder()
		guard.ServeHTTP(rec, req)
		return rec
	}

	t.Run("allows matching rights", func(t *testing.T) {
		t.Parallel()
		claims := auth.Claims{User: auth.UserClaims{Rights: users.Rights{CanDeleteParts: true}}}
		assert.Equal(t, http.StatusNoContent, call(&claims).Code)
	})

	t.Run("rejects missing rights", func(t *testing.T) {
		t.Parallel()
		claims := auth.Claims{User: auth.UserClaims{Rights: users.Rights{CanModifyParts: true}}}
		assert.Equal(t, http.StatusForbidden, call(&claims).Code)
	})

	t.Run("rejects requests with no claims", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, http.StatusForbidden, call(nil).Code)
	})
}

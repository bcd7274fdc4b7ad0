package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/partstock/modules/auth"
)

func newAuthServer(t *testing.T, svc *auth.Service) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(auth.NewHandler(svc, "").Routes())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(auth.DefaultTokenHeader, token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error.Code
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()

	user := testUser(t, "john@example.com", "secret")
	svc, _ := newTestService(t, newFakeUserStore(user))
	srv := newAuthServer(t, svc)

	t.Run("valid credentials return a token", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/", `{"email":"john@example.com","password":"secret"}`, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body auth.TokenResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.NotEmpty(t, body.Token)

		_, err := svc.Verify(body.Token)
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/", `{"email":"john@example.com","password":"wrong"}`, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "invalid_credentials", decodeError(t, resp))
	})

	t.Run("unknown email gets the same answer", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/", `{"email":"nobody@example.com","password":"secret"}`, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "invalid_credentials", decodeError(t, resp))
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/", `{"email":"john@example.com"}`, "")
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "validation_error", decodeError(t, resp))
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/", `{"email":`, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "bad_request", decodeError(t, resp))
	})
}

func TestLogoutEndpoint(t *testing.T) {
	t.Parallel()

	user := testUser(t, "john@example.com", "secret")
	svc, _ := newTestService(t, newFakeUserStore(user))
	srv := newAuthServer(t, svc)

	login := func(t *testing.T) string {
		t.Helper()
		resp := postJSON(t, srv.URL+"/", `{"email":"john@example.com","password":"secret"}`, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body auth.TokenResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body.Token
	}

	t.Run("logout invalidates the presented token only", func(t *testing.T) {
		first := login(t)
		second := login(t)

		resp := postJSON(t, srv.URL+"/logout", "", first)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body auth.LogoutResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, user.ID.Hex(), body.ID)

		resp = postJSON(t, srv.URL+"/logout", "", first)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "invalid_token", decodeError(t, resp))

		resp = postJSON(t, srv.URL+"/logout", "", second)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("logout without a token", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/logout", "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "no_token", decodeError(t, resp))
	})
}

package jwt_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/partstock/pkg/jwt"
)

type testClaims struct {
	UserID  string `json:"uid"`
	TokenID string `json:"tid"`
}

type rejectingClaims struct {
	UserID string `json:"uid"`
}

var errClaimsRejected = errors.New("claims rejected")

func (rejectingClaims) Valid() error { return errClaimsRejected }

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty key", func(t *testing.T) {
		t.Parallel()

		_, err := jwt.New(nil)
		assert.ErrorIs(t, err, jwt.ErrMissingSigningKey)

		_, err = jwt.NewFromString("")
		assert.ErrorIs(t, err, jwt.ErrMissingSigningKey)
	})

	t.Run("accepts non-empty key", func(t *testing.T) {
		t.Parallel()

		svc, err := jwt.NewFromString("test-signing-key-that-is-long-enough")
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestService_GenerateParse(t *testing.T) {
	t.Parallel()

	svc, err := jwt.NewFromString("test-signing-key-that-is-long-enough")
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		token, err := svc.Generate(testClaims{UserID: "user1", TokenID: "token1"})
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Len(t, strings.Split(token, "."), 3)

		var claims testClaims
		require.NoError(t, svc.Parse(token, &claims))
		assert.Equal(t, "user1", claims.UserID)
		assert.Equal(t, "token1", claims.TokenID)
	})

	t.Run("rejects nil claims on generate", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Generate(nil)
		assert.ErrorIs(t, err, jwt.ErrMissingClaims)
	})

	t.Run("rejects malformed token", func(t *testing.T) {
		t.Parallel()

		var claims testClaims
		assert.ErrorIs(t, svc.Parse("not-a-token", &claims), jwt.ErrInvalidToken)
		assert.ErrorIs(t, svc.Parse("a.b", &claims), jwt.ErrInvalidToken)
		assert.ErrorIs(t, svc.Parse("", &claims), jwt.ErrInvalidToken)
	})

	t.Run("rejects tampered signature", func(t *testing.T) {
		t.Parallel()

		token, err := svc.Generate(testClaims{UserID: "user1", TokenID: "token1"})
		require.NoError(t, err)

		// Flip one byte of the signature segment.
		tampered := []byte(token)
		last := len(tampered) - 1
		if tampered[last] == 'A' {
			tampered[last] = 'B'
		} else {
			tampered[last] = 'A'
		}

		var claims testClaims
		assert.ErrorIs(t, svc.Parse(string(tampered), &claims), jwt.ErrInvalidSignature)
	})

	t.Run("rejects tampered payload", func(t *testing.T) {
		t.Parallel()

		token, err := svc.Generate(testClaims{UserID: "user1", TokenID: "token1"})
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		parts[1] = parts[1][1:] + "x"

		var claims testClaims
		assert.ErrorIs(t, svc.Parse(strings.Join(parts, "."), &claims), jwt.ErrInvalidSignature)
	})

	t.Run("rejects token signed with another key", func(t *testing.T) {
		t.Parallel()

		other, err := jwt.NewFromString("a-completely-different-signing-key")
		require.NoError(t, err)

		token, err := other.Generate(testClaims{UserID: "user1", TokenID: "token1"})
		require.NoError(t, err)

		var claims testClaims
		assert.ErrorIs(t, svc.Parse(token, &claims), jwt.ErrInvalidSignature)
	})

	t.Run("honors Valid hook", func(t *testing.T) {
		t.Parallel()

		token, err := svc.Generate(rejectingClaims{UserID: "user1"})
		require.NoError(t, err)

		claims := &rejectingClaims{}
		assert.ErrorIs(t, svc.Parse(token, claims), errClaimsRejected)
	})
}

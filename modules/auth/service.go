package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/partstock/modules/users"
	"github.com/dmitrymomot/partstock/pkg/jwt"
	"github.com/dmitrymomot/partstock/pkg/tokenstore"
)

// UserStore is the slice of user storage the auth service needs: credential
// lookup plus the session ledger mutations.
type UserStore interface {
	List(ctx context.Context) ([]users.User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*users.User, error)
	FindByEmail(ctx context.Context, email string) (*users.User, error)
	PushToken(ctx context.Context, id bson.ObjectID, tokenID string) error
	PullToken(ctx context.Context, id bson.ObjectID, tokenID string) error
	ClearTokens(ctx context.Context, id bson.ObjectID) error
}

// Service implements the session lifecycle: issue on login, revoke one on
// logout, revoke all on rights change, drop on user deletion, and reseed the
// index from the ledger at startup.
//
// Within each operation the ledger write runs first and aborts the operation
// on failure; the index mutation follows and cannot fail. A crash between the
// two leaves the ledger authoritative until the next reseed.
type Service struct {
	store UserStore
	index *tokenstore.Store
	codec *jwt.Service
	log   *slog.Logger
}

// NewService wires the auth service. The index must be the same instance the
// middleware consults.
func NewService(store UserStore, index *tokenstore.Store, codec *jwt.Service, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, index: index, codec: codec, log: log}
}

// Login verifies credentials and issues a signed session token. Unknown
// emails and wrong passwords produce the same error. The token is handed out
// only after both the ledger and the index hold its ID.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", errors.Join(ErrStorage, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	tokenID := uuid.NewString()

	if err := s.store.PushToken(ctx, user.ID, tokenID); err != nil {
		return "", errors.Join(ErrStorage, err)
	}
	s.index.Add(user.ID.Hex(), tokenID)

	token, err := s.codec.Generate(NewClaims(user, tokenID))
	if err != nil {
		// Roll the issued ID back; nothing was handed to the caller.
		s.index.Invalidate(user.ID.Hex(), tokenID)
		if pullErr := s.store.PullToken(ctx, user.ID, tokenID); pullErr != nil {
			s.log.ErrorContext(ctx, "failed to roll back session token",
				slog.String("user_id", user.ID.Hex()), slog.Any("error", pullErr))
		}
		return "", err
	}

	s.log.InfoContext(ctx, "session issued", slog.String("user_id", user.ID.Hex()))
	return token, nil
}

// Logout revokes a single session token in both the ledger and the index.
// Returns the ID of the user logged out.
func (s *Service) Logout(ctx context.Context, userID, tokenID string) (string, error) {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return "", ErrUserNotFound
	}

	if _, err := s.store.FindByID(ctx, id); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", errors.Join(ErrStorage, err)
	}

	if err := s.store.PullToken(ctx, id, tokenID); err != nil {
		return "", errors.Join(ErrStorage, err)
	}
	s.index.Invalidate(userID, tokenID)

	s.log.InfoContext(ctx, "session revoked", slog.String("user_id", userID))
	return userID, nil
}

// RevokeAll invalidates every session of the user, ledger first.
func (s *Service) RevokeAll(ctx context.Context, userID string) error {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return ErrUserNotFound
	}

	if err := s.store.ClearTokens(ctx, id); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return ErrUserNotFound
		}
		return errors.Join(ErrStorage, err)
	}
	s.index.InvalidateAll(userID)

	s.log.InfoContext(ctx, "all sessions revoked", slog.String("user_id", userID))
	return nil
}

// RemoveUser drops the user's index entry after the user document is gone.
// The ledger disappears with the deleted document.
func (s *Service) RemoveUser(userID string) {
	s.index.RemoveUser(userID)
}

// IsTokenValid reports whether the token ID is currently live for the user.
func (s *Service) IsTokenValid(userID, tokenID string) bool {
	return s.index.IsValid(userID, tokenID)
}

// Reseed rebuilds the in-memory index from the validTokens ledger of every
// user document. Must complete before the auth gate serves any request; a
// storage failure here is fatal for startup.
func (s *Service) Reseed(ctx context.Context) error {
	all, err := s.store.List(ctx)
	if err != nil {
		return errors.Join(ErrStorage, err)
	}

	var tokens int
	for _, user := range all {
		for _, tokenID := range user.ValidTokens {
			s.index.Add(user.ID.Hex(), tokenID)
			tokens++
		}
	}

	s.log.InfoContext(ctx, "session index reseeded",
		slog.Int("users", len(all)), slog.Int("tokens", tokens))
	return nil
}

// Verify checks a raw token's signature and its membership in the index.
// Both failure modes collapse into ErrInvalidToken.
func (s *Service) Verify(token string) (Claims, error) {
	var claims Claims
	if err := s.codec.Parse(token, &claims); err != nil {
		return Claims{}, ErrInvalidToken
	}

	if !s.index.IsValid(claims.User.ID, claims.TokenID) {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}

package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/partstock/pkg/binder"
	"github.com/dmitrymomot/partstock/pkg/response"
	"github.com/dmitrymomot/partstock/pkg/validator"
)

// SessionRevoker is what the handler needs from the auth service: bulk
// revocation on rights change and index cleanup on deletion. An interface
// here keeps the dependency pointing auth -> users only.
type SessionRevoker interface {
	RevokeAll(ctx context.Context, userID string) error
	RemoveUser(userID string)
}

// Middleware is a chi-compatible middleware constructor.
type Middleware = func(http.Handler) http.Handler

// Handler exposes the user management endpoints.
type Handler struct {
	storage  Storage
	sessions SessionRevoker
}

// CreateUserRequest is the body for creating and updating users.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rights   Rights `json:"rights"`
}

// NewHandler creates the users handler.
func NewHandler(storage Storage, sessions SessionRevoker) *Handler {
	return &Handler{storage: storage, sessions: sessions}
}

// Routes mounts the user endpoints. The gate authenticates every route;
// mutations additionally require the matching rights flag.
func (h *Handler) Routes(gate, canModify, canDelete Middleware) chi.Router {
	r := chi.NewRouter()
	r.Use(gate)

	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.With(canModify).Post("/", h.create)
	r.With(canModify).Put("/{id}", h.update)
	r.With(canModify).Put("/{id}/rights", h.updateRights)
	r.With(canDelete).Delete("/{id}", h.delete)

	return r
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	all, err := h.storage.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, all)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}

	user, err := h.storage.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, response.ErrNotFound)
			return
		}
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, user)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := binder.JSON(r, &req); err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}
	if err := validateUserRequest(req); err != nil {
		response.Error(w, err)
		return
	}

	if err := h.emailAvailable(r.Context(), req.Email); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(w, response.ErrConflict)
			return
		}
		response.Error(w, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.Error(w, err)
		return
	}

	user := &User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Rights:       req.Rights,
		ValidTokens:  []string{},
	}
	if err := h.storage.Create(r.Context(), user); err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, user)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}

	var req CreateUserRequest
	if err := binder.JSON(r, &req); err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}
	if err := validateUserRequest(req); err != nil {
		response.Error(w, err)
		return
	}

	user, err := h.storage.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, response.ErrNotFound)
			return
		}
		response.Error(w, err)
		return
	}

	if req.Email != user.Email {
		if err := h.emailAvailable(r.Context(), req.Email); err != nil {
			if errors.Is(err, ErrEmailAlreadyExists) {
				response.Error(w, response.ErrConflict)
				return
			}
			response.Error(w, err)
			return
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.Error(w, err)
		return
	}

	user.Name = req.Name
	user.Email = req.Email
	user.PasswordHash = string(hash)

	if err := h.storage.Update(r.Context(), user); err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, user)
}

func (h *Handler) updateRights(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}

	var rights Rights
	if err := binder.JSON(r, &rights); err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}

	user, err := h.storage.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, response.ErrNotFound)
			return
		}
		response.Error(w, err)
		return
	}

	// Re-submitting identical rights must not log the user out.
	if rights == user.Rights {
		response.JSON(w, http.StatusOK, user)
		return
	}

	if err := h.storage.UpdateRights(r.Context(), id, rights); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.sessions.RevokeAll(r.Context(), id.Hex()); err != nil {
		response.Error(w, err)
		return
	}

	user.Rights = rights
	response.JSON(w, http.StatusOK, user)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}

	user, err := h.storage.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, response.ErrNotFound)
			return
		}
		response.Error(w, err)
		return
	}

	if err := h.storage.Delete(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	h.sessions.RemoveUser(id.Hex())

	response.JSON(w, http.StatusOK, user)
}

// emailAvailable returns ErrEmailAlreadyExists when another user already
// holds the address.
func (h *Handler) emailAvailable(ctx context.Context, email string) error {
	_, err := h.storage.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return ErrEmailAlreadyExists
	case errors.Is(err, ErrNotFound):
		return nil
	default:
		return err
	}
}

func validateUserRequest(req CreateUserRequest) error {
	return validator.Apply(
		validator.RequiredString("name", req.Name),
		validator.MinLenString("name", req.Name, 2),
		validator.MaxLenString("name", req.Name, 100),
		validator.RequiredString("email", req.Email),
		validator.ValidEmail("email", req.Email),
		validator.RequiredString("password", req.Password),
	)
}

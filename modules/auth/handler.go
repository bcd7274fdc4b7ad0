package auth

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/partstock/pkg/binder"
	"github.com/dmitrymomot/partstock/pkg/response"
	"github.com/dmitrymomot/partstock/pkg/validator"
)

var errInvalidCredentialsResponse = response.NewHTTPError(
	http.StatusUnauthorized, "invalid_credentials", "Invalid e-mail address or password.")

// LoginRequest is the login endpoint body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// LogoutResponse confirms which user was logged out.
type LogoutResponse struct {
	ID string `json:"id"`
}

// Handler exposes the authentication endpoints.
type Handler struct {
	svc         *Service
	tokenHeader string
}

// NewHandler creates the auth handler. tokenHeader may be empty to use the
// default.
func NewHandler(svc *Service, tokenHeader string) *Handler {
	if tokenHeader == "" {
		tokenHeader = DefaultTokenHeader
	}
	return &Handler{svc: svc, tokenHeader: tokenHeader}
}

// Routes mounts login and logout. Logout sits behind the auth gate, so only
// holders of a live token can revoke it.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.login)

	r.Group(func(r chi.Router) {
		r.Use(h.svc.Middleware(h.tokenHeader))
		r.Post("/logout", h.logout)
	})

	return r
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := binder.JSON(r, &req); err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}

	if err := validator.Apply(
		validator.RequiredString("email", req.Email),
		validator.RequiredString("password", req.Password),
	); err != nil {
		response.Error(w, err)
		return
	}

	token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(w, errInvalidCredentialsResponse)
			return
		}
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, TokenResponse{Token: token})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, response.ErrUnauthorized)
		return
	}

	id, err := h.svc.Logout(r.Context(), claims.User.ID, claims.TokenID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(w, response.ErrNotFound)
			return
		}
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, LogoutResponse{ID: id})
}

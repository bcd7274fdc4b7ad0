package partpackages

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/partstock/modules/auth"
	"github.com/dmitrymomot/partstock/pkg/binder"
	"github.com/dmitrymomot/partstock/pkg/response"
	"github.com/dmitrymomot/partstock/pkg/validator"
)

// Middleware is a chi-compatible middleware constructor.
type Middleware = func(http.Handler) http.Handler

// Handler exposes the part package endpoints.
type Handler struct {
	storage Storage
}

// PackageRequest is the body for creating and updating part packages.
type PackageRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func NewHandler(storage Storage) *Handler {
	return &Handler{storage: storage}
}

// Routes mounts the package endpoints behind the gate. Package edits are
// covered by the part modification rights.
func (h *Handler) Routes(gate, canModify, canDelete Middleware) chi.Router {
	r := chi.NewRouter()
	r.Use(gate)

	r.Get("/", h.list)
	r.Get("/types", h.types)
	r.Get("/{id}", h.get)
	r.With(canModify).Post("/", h.create)
	r.With(canModify).Put("/{id}", h.update)
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

func (h *Handler) types(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, []string{TypeSMD, TypeTHT})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}

	pkg, err := h.storage.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, response.ErrNotFound)
			return
		}
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, pkg)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req PackageRequest
	if err := binder.JSON(r, &req); err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}
	if err := validatePackageRequest(req); err != nil {
		response.Error(w, err)
		return
	}

	if err := h.nameAvailable(r.Context(), req.Name); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			response.Error(w, response.ErrConflict)
			return
		}
		response.Error(w, err)
		return
	}

	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, response.ErrUnauthorized)
		return
	}

	pkg := &PartPackage{
		Name:      req.Name,
		Type:      req.Type,
		CreatedBy: claims.User.ID,
	}
	if err := h.storage.Create(r.Context(), pkg); err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, pkg)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}

	var req PackageRequest
	if err := binder.JSON(r, &req); err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}
	if err := validatePackageRequest(req); err != nil {
		response.Error(w, err)
		return
	}

	pkg, err := h.storage.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, response.ErrNotFound)
			return
		}
		response.Error(w, err)
		return
	}

	if req.Name != pkg.Name {
		if err := h.nameAvailable(r.Context(), req.Name); err != nil {
			if errors.Is(err, ErrDuplicateName) {
				response.Error(w, response.ErrConflict)
				return
			}
			response.Error(w, err)
			return
		}
	}

	pkg.Name = req.Name
	pkg.Type = req.Type

	if err := h.storage.Update(r.Context(), pkg); err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, pkg)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}

	pkg, err := h.storage.FindByID(r.Context(), id)
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

	response.JSON(w, http.StatusOK, pkg)
}

// nameAvailable returns ErrDuplicateName when another package already holds
// the name.
func (h *Handler) nameAvailable(ctx context.Context, name string) error {
	_, err := h.storage.FindByName(ctx, name)
	switch {
	case err == nil:
		return ErrDuplicateName
	case errors.Is(err, ErrNotFound):
		return nil
	default:
		return err
	}
}

func validatePackageRequest(req PackageRequest) error {
	return validator.Apply(
		validator.RequiredString("name", req.Name),
		validator.MinLenString("name", req.Name, 2),
		validator.MaxLenString("name", req.Name, 50),
		validator.RequiredString("type", req.Type),
		validator.OneOf("type", req.Type, []string{TypeSMD, TypeTHT}),
	)
}

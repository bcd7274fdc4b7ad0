package categories

import (
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

// Handler exposes the category endpoints.
type Handler struct {
	storage Storage
}

// CategoryRequest is the body for creating and updating categories.
type CategoryRequest struct {
	Name   string `json:"name"`
	Parent string `json:"parent"`
}

func NewHandler(storage Storage) *Handler {
	return &Handler{storage: storage}
}

// Routes mounts the category endpoints behind the gate. Category edits are
// covered by the part modification rights.
func (h *Handler) Routes(gate, canModify, canDelete Middleware) chi.Router {
	r := chi.NewRouter()
	r.Use(gate)

	r.Get("/", h.list)
	r.Get("/sub/{id}", h.subcategories)
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

func (h *Handler) subcategories(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}

	subs, err := h.storage.ListByParent(r.Context(), id.Hex())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, subs)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}

	category, err := h.storage.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, response.ErrNotFound)
			return
		}
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, category)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := binder.JSON(r, &req); err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}
	if err := validateCategoryRequest(req); err != nil {
		response.Error(w, err)
		return
	}

	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, response.ErrUnauthorized)
		return
	}

	category := &Category{
		Name:      req.Name,
		Parent:    req.Parent,
		CreatedBy: claims.User.ID,
	}
	if err := h.storage.Create(r.Context(), category); err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, category)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}

	var req CategoryRequest
	if err := binder.JSON(r, &req); err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}
	if err := validateCategoryRequest(req); err != nil {
		response.Error(w, err)
		return
	}

	category, err := h.storage.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, response.ErrNotFound)
			return
		}
		response.Error(w, err)
		return
	}

	category.Name = req.Name
	category.Parent = req.Parent

	if err := h.storage.Update(r.Context(), category); err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, category)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}

	category, err := h.storage.FindByID(r.Context(), id)
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

	response.JSON(w, http.StatusOK, category)
}

func validateCategoryRequest(req CategoryRequest) error {
	return validator.Apply(
		validator.RequiredString("name", req.Name),
		validator.MinLenString("name", req.Name, 2),
		validator.MaxLenString("name", req.Name, 255),
	)
}

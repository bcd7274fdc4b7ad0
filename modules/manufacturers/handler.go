package manufacturers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/partstock/pkg/binder"
	"github.com/dmitrymomot/partstock/pkg/response"
	"github.com/dmitrymomot/partstock/pkg/validator"
)

// Middleware is a chi-compatible middleware constructor.
type Middleware = func(http.Handler) http.Handler

// Handler exposes the manufacturer endpoints.
type Handler struct {
	storage Storage
}

// ManufacturerRequest is the body for creating and updating manufacturers.
type ManufacturerRequest struct {
	Name string `json:"name"`
}

func NewHandler(storage Storage) *Handler {
	return &Handler{storage: storage}
}

// Routes mounts the manufacturer endpoints behind the gate. Manufacturer
// edits are covered by the part modification rights.
func (h *Handler) Routes(gate, canModify, canDelete Middleware) chi.Router {
	r := chi.NewRouter()
	r.Use(gate)

	r.Get("/", h.list)
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

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}

	manufacturer, err := h.storage.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, response.ErrNotFound)
			return
		}
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, manufacturer)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req ManufacturerRequest
	if err := binder.JSON(r, &req); err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}
	if err := validateManufacturerRequest(req); err != nil {
		response.Error(w, err)
		return
	}

	manufacturer := &Manufacturer{Name: req.Name}
	if err := h.storage.Create(r.Context(), manufacturer); err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, manufacturer)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}

	var req ManufacturerRequest
	if err := binder.JSON(r, &req); err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}
	if err := validateManufacturerRequest(req); err != nil {
		response.Error(w, err)
		return
	}

	manufacturer, err := h.storage.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, response.ErrNotFound)
			return
		}
		response.Error(w, err)
		return
	}

	manufacturer.Name = req.Name

	if err := h.storage.Update(r.Context(), manufacturer); err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, manufacturer)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}

	manufacturer, err := h.storage.FindByID(r.Context(), id)
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

	response.JSON(w, http.StatusOK, manufacturer)
}

func validateManufacturerRequest(req ManufacturerRequest) error {
	return validator.Apply(
		validator.RequiredString("name", req.Name),
		validator.MinLenString("name", req.Name, 2),
		validator.MaxLenString("name", req.Name, 150),
	)
}

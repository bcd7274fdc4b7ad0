package parts

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/partstock/modules/auth"
	"github.com/dmitrymomot/partstock/pkg/binder"
	"github.com/dmitrymomot/partstock/pkg/response"
	"github.com/dmitrymomot/partstock/pkg/validator"
)

// Middleware is a chi-compatible middleware constructor.
type Middleware = func(http.Handler) http.Handler

// Handler exposes the part inventory endpoints.
type Handler struct {
	storage Storage
}

// PartRequest is the body for creating and updating parts.
type PartRequest struct {
	Name         string  `json:"name"`
	Manufacturer string  `json:"manufacturer"`
	Package      string  `json:"package"`
	Price        float64 `json:"price"`
	Count        int     `json:"count"`
	Category     string  `json:"category"`
}

func NewHandler(storage Storage) *Handler {
	return &Handler{storage: storage}
}

// Routes mounts the part endpoints. The gate authenticates every route;
// mutations additionally require the matching rights flag.
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

	part, err := h.storage.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, response.ErrNotFound)
			return
		}
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, part)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req PartRequest
	if err := binder.JSON(r, &req); err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}
	if err := validatePartRequest(req); err != nil {
		response.Error(w, err)
		return
	}

	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, response.ErrUnauthorized)
		return
	}

	part := &Part{
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
		Package:      req.Package,
		Price:        req.Price,
		Count:        req.Count,
		Category:     req.Category,
		CreatedOn:    time.Now().UTC(),
		CreatedBy:    claims.User.ID,
	}
	if err := h.storage.Create(r.Context(), part); err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, part)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}

	var req PartRequest
	if err := binder.JSON(r, &req); err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}
	if err := validatePartRequest(req); err != nil {
		response.Error(w, err)
		return
	}

	part, err := h.storage.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, response.ErrNotFound)
			return
		}
		response.Error(w, err)
		return
	}

	part.Name = req.Name
	part.Manufacturer = req.Manufacturer
	part.Package = req.Package
	part.Price = req.Price
	part.Count = req.Count
	part.Category = req.Category

	if err := h.storage.Update(r.Context(), part); err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, part)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, response.ErrBadRequest)
		return
	}

	part, err := h.storage.FindByID(r.Context(), id)
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

	response.JSON(w, http.StatusOK, part)
}

func validatePartRequest(req PartRequest) error {
	return validator.Apply(
		validator.RequiredString("name", req.Name),
		validator.MinLenString("name", req.Name, 2),
		validator.MaxLenString("name", req.Name, 255),
		validator.RequiredString("manufacturer", req.Manufacturer),
		validator.RequiredString("package", req.Package),
		validator.GreaterThan("price", req.Price, 0),
		validator.MinNumeric("count", req.Count, 0),
	)
}

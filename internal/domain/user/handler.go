package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/parkhive/parkhive-api/internal/middleware"
	"github.com/parkhive/parkhive-api/internal/pkg/authz"
	"github.com/parkhive/parkhive-api/internal/pkg/cache"
	"github.com/parkhive/parkhive-api/internal/pkg/response"
	"github.com/parkhive/parkhive-api/internal/pkg/validator"
)

// Handler handles user HTTP requests
type Handler struct {
	service *Service
	cache   *cache.Cache
}

// NewHandler creates user handler
func NewHandler(service *Service, c *cache.Cache) *Handler {
	return &Handler{service: service, cache: c}
}

// GetByID handles GET /users/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	u, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		response.NotFound(w, "User not found")
		return
	}

	identity := middleware.GetIdentity(r.Context())
	ownerView := authz.Allowed(u.ID, identity)
	response.OK(w, UserResponseFromEntity(u, ownerView))
}

// Update handles PUT /users/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	identity := middleware.GetIdentity(r.Context())
	u, err := h.service.Update(r.Context(), id, identity, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.NotFound(w, "User not found")
		case errors.Is(err, ErrNotResourceOwner):
			response.NotAllowed(w)
		case errors.Is(err, ErrDuplicateUsername):
			response.Conflict(w, "Username already taken")
		case errors.Is(err, ErrDuplicateEmail):
			response.Conflict(w, "Email already registered")
		default:
			response.InternalError(w)
		}
		return
	}

	h.cache.InvalidateTags(r.Context(), cache.TagUser)
	response.OK(w, UserResponseFromEntity(u, true))
}

// Delete handles DELETE /users/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	identity := middleware.GetIdentity(r.Context())
	if err := h.service.Delete(r.Context(), id, identity); err != nil {
		switch err {
		case ErrUserNotFound:
			response.NotFound(w, "User not found")
		case ErrNotResourceOwner:
			response.NotAllowed(w)
		case ErrHasActiveBookings, ErrParkingsHaveActiveBookings:
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w)
		}
		return
	}

	h.cache.InvalidateTags(r.Context(), cache.TagUser)
	response.NoContent(w)
}

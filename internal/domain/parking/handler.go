package parking

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/parkhive/parkhive-api/internal/middleware"
	"github.com/parkhive/parkhive-api/internal/pkg/authz"
	"github.com/parkhive/parkhive-api/internal/pkg/cache"
	"github.com/parkhive/parkhive-api/internal/pkg/response"
	"github.com/parkhive/parkhive-api/internal/pkg/validator"
)

// DefaultPageSize is both the default and the cap for parking listings.
const DefaultPageSize = 12

// Handler handles parking HTTP requests
type Handler struct {
	service *Service
	cache   *cache.Cache
}

// NewHandler creates parking handler
func NewHandler(service *Service, c *cache.Cache) *Handler {
	return &Handler{service: service, cache: c}
}

type listPage struct {
	Items []*ParkingResponse `json:"items"`
	Total int                `json:"total"`
}

// List handles GET /parkings
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := 1
	limit := DefaultPageSize
	if p := query.Get("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if l := query.Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= DefaultPageSize {
			limit = v
		}
	}

	var cached listPage
	key := fmt.Sprintf("parkings:list:%d:%d", page, limit)
	err := h.cache.Remember(r.Context(), key, []string{cache.TagParking}, &cached, func() (interface{}, error) {
		parkings, total, err := h.service.List(r.Context(), &Pagination{Page: page, Limit: limit})
		if err != nil {
			return nil, err
		}
		items := make([]*ParkingResponse, len(parkings))
		for i, p := range parkings {
			items[i] = ParkingResponseFromEntity(p)
		}
		return listPage{Items: items, Total: total}, nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list parkings")
		response.InternalError(w)
		return
	}

	total := cached.Total
	response.WithMeta(w, cached.Items, response.Meta{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   (total + limit - 1) / limit,
		HasNext: page*limit < total,
		HasPrev: page > 1,
	})
}

// GetByID handles GET /parkings/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid parking ID")
		return
	}

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrParkingNotFound):
			response.NotFound(w, "Parking not found")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, ParkingResponseFromEntity(p))
}

// Create handles POST /parkings
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateParkingRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	identity := middleware.GetIdentity(r.Context())
	p, err := h.service.Create(r.Context(), identity, &req)
	if err != nil {
		var violations validator.Violations
		switch {
		case errors.As(err, &violations):
			response.ValidationError(w, violations)
		case errors.Is(err, ErrOwnerNotFound):
			response.BadRequest(w, "Owner does not exist")
		default:
			log.Error().Err(err).Msg("failed to create parking")
			response.InternalError(w)
		}
		return
	}

	h.cache.InvalidateTags(r.Context(), cache.TagParking)
	response.Created(w, "/api/v1/parkings/"+p.ID.String(), ParkingResponseFromEntity(p))
}

// Update handles PATCH /parkings/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid parking ID")
		return
	}

	var req UpdateParkingRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	identity := middleware.GetIdentity(r.Context())
	p, err := h.service.Update(r.Context(), id, identity, &req)
	if err != nil {
		var violations validator.Violations
		switch {
		case errors.Is(err, ErrParkingNotFound):
			response.NotFound(w, "Parking not found")
		case errors.Is(err, ErrNotParkingOwner):
			response.NotAllowed(w)
		case errors.As(err, &violations):
			response.ValidationError(w, violations)
		default:
			log.Error().Err(err).Msg("failed to update parking")
			response.InternalError(w)
		}
		return
	}

	h.cache.InvalidateTags(r.Context(), cache.TagParking)
	response.OK(w, ParkingResponseFromEntity(p))
}

// Delete handles DELETE /parkings/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid parking ID")
		return
	}

	identity := middleware.GetIdentity(r.Context())
	if err := h.service.Delete(r.Context(), id, identity); err != nil {
		switch {
		case errors.Is(err, ErrParkingNotFound):
			response.NotFound(w, "Parking not found")
		case errors.Is(err, ErrNotParkingOwner):
			response.NotAllowed(w)
		default:
			log.Error().Err(err).Msg("failed to delete parking")
			response.InternalError(w)
		}
		return
	}

	// Prices are orphan-removed with their parking.
	h.cache.InvalidateTags(r.Context(), cache.TagParking, cache.TagPrice)
	response.NoContent(w)
}

// ListByOwner handles GET /users/{id}/parkings
func (h *Handler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	identity := middleware.GetIdentity(r.Context())
	if !authz.Allowed(ownerID, identity) {
		response.NotAllowed(w)
		return
	}

	parkings, err := h.service.ListByOwner(r.Context(), ownerID)
	if err != nil {
		log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("failed to list parkings by owner")
		response.InternalError(w)
		return
	}

	items := make([]*ParkingResponse, len(parkings))
	for i, p := range parkings {
		items[i] = ParkingResponseFromEntity(p)
	}
	response.OK(w, items)
}

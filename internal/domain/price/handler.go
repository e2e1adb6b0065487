package price

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/parkhive/parkhive-api/internal/middleware"
	"github.com/parkhive/parkhive-api/internal/pkg/cache"
	"github.com/parkhive/parkhive-api/internal/pkg/response"
	"github.com/parkhive/parkhive-api/internal/pkg/validator"
)

// Handler handles price HTTP requests
type Handler struct {
	service *Service
	cache   *cache.Cache
}

// NewHandler creates price handler
func NewHandler(service *Service, c *cache.Cache) *Handler {
	return &Handler{service: service, cache: c}
}

// List handles GET /prices
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var items []*PriceResponse
	err := h.cache.Remember(r.Context(), "prices:list", []string{cache.TagPrice}, &items, func() (interface{}, error) {
		prices, err := h.service.List(r.Context())
		if err != nil {
			return nil, err
		}
		out := make([]*PriceResponse, len(prices))
		for i, p := range prices {
			out[i] = PriceResponseFromEntity(p)
		}
		return out, nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list prices")
		response.InternalError(w)
		return
	}

	response.OK(w, items)
}

// GetByID handles GET /prices/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid price ID")
		return
	}

	var item *PriceResponse
	err = h.cache.Remember(r.Context(), "prices:"+id.String(), []string{cache.TagPrice}, &item, func() (interface{}, error) {
		p, err := h.service.GetByID(r.Context(), id)
		if err != nil {
			return nil, err
		}
		return PriceResponseFromEntity(p), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrPriceNotFound):
			response.NotFound(w, "Price not found")
		default:
			log.Error().Err(err).Msg("failed to get price")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, item)
}

// Create handles POST /prices
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePriceRequest
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
		h.writeMutationError(w, err, "failed to create price")
		return
	}

	h.cache.InvalidateTags(r.Context(), cache.TagPrice)
	response.Created(w, "/api/v1/prices/"+p.ID.String(), PriceResponseFromEntity(p))
}

// Update handles PATCH /prices/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid price ID")
		return
	}

	var req UpdatePriceRequest
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
		h.writeMutationError(w, err, "failed to update price")
		return
	}

	h.cache.InvalidateTags(r.Context(), cache.TagPrice)
	response.OK(w, PriceResponseFromEntity(p))
}

// Delete handles DELETE /prices/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid price ID")
		return
	}

	identity := middleware.GetIdentity(r.Context())
	if err := h.service.Delete(r.Context(), id, identity); err != nil {
		h.writeMutationError(w, err, "failed to delete price")
		return
	}

	h.cache.InvalidateTags(r.Context(), cache.TagPrice)
	response.NoContent(w)
}

// ListByParking handles GET /parkings/{id}/prices
func (h *Handler) ListByParking(w http.ResponseWriter, r *http.Request) {
	parkingID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid parking ID")
		return
	}

	var items []*PriceResponse
	err = h.cache.Remember(r.Context(), "prices:parking:"+parkingID.String(), []string{cache.TagPrice}, &items, func() (interface{}, error) {
		prices, err := h.service.ListActiveByParking(r.Context(), parkingID)
		if err != nil {
			return nil, err
		}
		out := make([]*PriceResponse, len(prices))
		for i, p := range prices {
			out[i] = PriceResponseFromEntity(p)
		}
		return out, nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list parking prices")
		response.InternalError(w)
		return
	}

	response.OK(w, items)
}

func (h *Handler) writeMutationError(w http.ResponseWriter, err error, logMsg string) {
	var violations validator.Violations
	switch {
	case errors.Is(err, ErrPriceNotFound):
		response.NotFound(w, "Price not found")
	case errors.Is(err, ErrParkingNotFound):
		response.NotFound(w, "Parking not found")
	case errors.Is(err, ErrNotParkingOwner):
		response.NotAllowed(w)
	case errors.Is(err, ErrPriceExists):
		response.Conflict(w, ErrPriceExists.Error())
	case errors.As(err, &violations):
		response.ValidationError(w, violations)
	default:
		log.Error().Err(err).Msg(logMsg)
		response.InternalError(w)
	}
}

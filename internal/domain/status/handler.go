package status

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/parkhive/parkhive-api/internal/pkg/cache"
	"github.com/parkhive/parkhive-api/internal/pkg/response"
	"github.com/parkhive/parkhive-api/internal/pkg/validator"
)

// Handler handles status HTTP requests
type Handler struct {
	service *Service
	cache   *cache.Cache
}

// NewHandler creates status handler
func NewHandler(service *Service, c *cache.Cache) *Handler {
	return &Handler{service: service, cache: c}
}

// List handles GET /statuses
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var items []*StatusResponse
	err := h.cache.Remember(r.Context(), "statuses:list", []string{cache.TagStatus}, &items, func() (interface{}, error) {
		statuses, err := h.service.List(r.Context())
		if err != nil {
			return nil, err
		}
		out := make([]*StatusResponse, len(statuses))
		for i, s := range statuses {
			out[i] = StatusResponseFromEntity(s)
		}
		return out, nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list statuses")
		response.InternalError(w)
		return
	}

	response.OK(w, items)
}

// GetByID handles GET /statuses/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid status ID")
		return
	}

	var item *StatusResponse
	err = h.cache.Remember(r.Context(), "statuses:"+id.String(), []string{cache.TagStatus}, &item, func() (interface{}, error) {
		s, err := h.service.GetByID(r.Context(), id)
		if err != nil {
			return nil, err
		}
		return StatusResponseFromEntity(s), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrStatusNotFound):
			response.NotFound(w, "Status not found")
		default:
			log.Error().Err(err).Msg("failed to get status")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, item)
}

// Create handles POST /statuses (admin)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateStatusRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	st, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateName):
			response.Conflict(w, "Status name already exists")
		default:
			log.Error().Err(err).Msg("failed to create status")
			response.InternalError(w)
		}
		return
	}

	h.cache.InvalidateTags(r.Context(), cache.TagStatus)
	response.Created(w, "/api/v1/statuses/"+st.ID.String(), StatusResponseFromEntity(st))
}

// Update handles PATCH /statuses/{id} (admin)
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid status ID")
		return
	}

	var req UpdateStatusRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	st, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrStatusNotFound):
			response.NotFound(w, "Status not found")
		case errors.Is(err, ErrDuplicateName):
			response.Conflict(w, "Status name already exists")
		default:
			log.Error().Err(err).Msg("failed to update status")
			response.InternalError(w)
		}
		return
	}

	h.cache.InvalidateTags(r.Context(), cache.TagStatus)
	response.OK(w, StatusResponseFromEntity(st))
}

// Delete handles DELETE /statuses/{id} (admin)
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid status ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrStatusNotFound):
			response.NotFound(w, "Status not found")
		default:
			log.Error().Err(err).Msg("failed to delete status")
			response.InternalError(w)
		}
		return
	}

	h.cache.InvalidateTags(r.Context(), cache.TagStatus)
	response.NoContent(w)
}

package booking

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/parkhive/parkhive-api/internal/domain/payment"
	"github.com/parkhive/parkhive-api/internal/middleware"
	"github.com/parkhive/parkhive-api/internal/pkg/cache"
	"github.com/parkhive/parkhive-api/internal/pkg/response"
	"github.com/parkhive/parkhive-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests
type Handler struct {
	service *Service
	cache   *cache.Cache
}

// NewHandler creates booking handler
func NewHandler(service *Service, c *cache.Cache) *Handler {
	return &Handler{service: service, cache: c}
}

// Create handles POST /bookings
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	identity := middleware.GetIdentity(r.Context())
	b, p, err := h.service.Create(r.Context(), identity, &req)
	if err != nil {
		var violations validator.Violations
		switch {
		case errors.As(err, &violations):
			response.ValidationError(w, violations)
		case errors.Is(err, ErrParkingNotFound):
			response.NotFound(w, "Parking not found")
		case errors.Is(err, ErrPriceNotFound):
			response.NotFound(w, "Price not found")
		case errors.Is(err, ErrPriceMismatch):
			response.BadRequest(w, "Price does not belong to this parking")
		case errors.Is(err, ErrCardNotFound):
			response.NotFound(w, "Credit card not found")
		case errors.Is(err, ErrNotCardOwner):
			response.NotAllowed(w)
		default:
			log.Error().Err(err).Msg("failed to create booking")
			response.InternalError(w)
		}
		return
	}

	h.cache.InvalidateTags(r.Context(), cache.TagBooking, cache.TagPayment)

	resp := BookingResponseFromEntity(b)
	resp.Payment = payment.PaymentResponseFromEntity(p)
	response.Created(w, "/api/v1/bookings/"+b.ID.String(), resp)
}

// List handles GET /bookings
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	var items []*BookingResponse
	key := "bookings:list:" + identity.UserID.String()
	err := h.cache.Remember(r.Context(), key, []string{cache.TagBooking}, &items, func() (interface{}, error) {
		bookings, err := h.service.List(r.Context(), identity)
		if err != nil {
			return nil, err
		}
		out := make([]*BookingResponse, len(bookings))
		for i, b := range bookings {
			out[i] = BookingResponseFromEntity(b)
		}
		return out, nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")
		response.InternalError(w)
		return
	}

	response.OK(w, items)
}

// GetByID handles GET /bookings/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	identity := middleware.GetIdentity(r.Context())
	b, err := h.service.GetByID(r.Context(), id, identity)
	if err != nil {
		h.writeError(w, err, "failed to get booking")
		return
	}

	response.OK(w, BookingResponseFromEntity(b))
}

// Update handles PATCH /bookings/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req UpdateBookingRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	identity := middleware.GetIdentity(r.Context())
	b, err := h.service.Update(r.Context(), id, identity, &req)
	if err != nil {
		var violations validator.Violations
		switch {
		case errors.As(err, &violations):
			response.ValidationError(w, violations)
		case errors.Is(err, ErrBookingNotFound):
			response.NotFound(w, "Booking not found")
		case errors.Is(err, ErrNotClient):
			response.NotAllowed(w)
		default:
			log.Error().Err(err).Msg("failed to update booking")
			response.InternalError(w)
		}
		return
	}

	h.cache.InvalidateTags(r.Context(), cache.TagBooking)
	response.OK(w, BookingResponseFromEntity(b))
}

// Delete handles DELETE /bookings/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	identity := middleware.GetIdentity(r.Context())
	if err := h.service.Delete(r.Context(), id, identity); err != nil {
		h.writeError(w, err, "failed to delete booking")
		return
	}

	h.cache.InvalidateTags(r.Context(), cache.TagBooking)
	response.NoContent(w)
}

// ListByUser handles GET /users/{id}/bookings
func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	clientID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	identity := middleware.GetIdentity(r.Context())
	bookings, err := h.service.ListByClient(r.Context(), clientID, identity)
	if err != nil {
		h.writeError(w, err, "failed to list bookings by user")
		return
	}

	items := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = BookingResponseFromEntity(b)
	}
	response.OK(w, items)
}

func (h *Handler) writeError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		response.NotFound(w, "Booking not found")
	case errors.Is(err, ErrNotStakeholder), errors.Is(err, ErrNotClient):
		response.NotAllowed(w)
	default:
		log.Error().Err(err).Msg(logMsg)
		response.InternalError(w)
	}
}

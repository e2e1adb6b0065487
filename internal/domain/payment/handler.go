package payment

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

// Handler handles payment HTTP requests
type Handler struct {
	service *Service
	cache   *cache.Cache
}

// NewHandler creates payment handler
func NewHandler(service *Service, c *cache.Cache) *Handler {
	return &Handler{service: service, cache: c}
}

// List handles GET /payments
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	var items []*PaymentResponse
	key := "payments:list:" + identity.UserID.String()
	err := h.cache.Remember(r.Context(), key, []string{cache.TagPayment}, &items, func() (interface{}, error) {
		payments, err := h.service.List(r.Context(), identity)
		if err != nil {
			return nil, err
		}
		out := make([]*PaymentResponse, len(payments))
		for i, p := range payments {
			out[i] = PaymentResponseFromEntity(p)
		}
		return out, nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list payments")
		response.InternalError(w)
		return
	}

	response.OK(w, items)
}

// GetByID handles GET /payments/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid payment ID")
		return
	}

	identity := middleware.GetIdentity(r.Context())
	p, err := h.service.GetByID(r.Context(), id, identity)
	if err != nil {
		h.writeError(w, err, "failed to get payment")
		return
	}

	response.OK(w, PaymentResponseFromEntity(p))
}

// Update handles PATCH /payments/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid payment ID")
		return
	}

	var req UpdatePaymentRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	identity := middleware.GetIdentity(r.Context())
	p, err := h.service.UpdateStatus(r.Context(), id, identity, req.Status)
	if err != nil {
		h.writeError(w, err, "failed to update payment")
		return
	}

	h.cache.InvalidateTags(r.Context(), cache.TagPayment)
	response.OK(w, PaymentResponseFromEntity(p))
}

// Delete handles DELETE /payments/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid payment ID")
		return
	}

	identity := middleware.GetIdentity(r.Context())
	if err := h.service.Delete(r.Context(), id, identity); err != nil {
		h.writeError(w, err, "failed to delete payment")
		return
	}

	h.cache.InvalidateTags(r.Context(), cache.TagPayment)
	response.NoContent(w)
}

func (h *Handler) writeError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, ErrPaymentNotFound):
		response.NotFound(w, "Payment not found")
	case errors.Is(err, ErrNotStakeholder):
		response.NotAllowed(w)
	default:
		log.Error().Err(err).Msg(logMsg)
		response.InternalError(w)
	}
}

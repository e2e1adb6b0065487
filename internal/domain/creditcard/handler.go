package creditcard

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/parkhive/parkhive-api/internal/middleware"
	"github.com/parkhive/parkhive-api/internal/pkg/response"
	"github.com/parkhive/parkhive-api/internal/pkg/validator"
)

// Handler handles credit card HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates credit card handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /credit-cards (the caller's cards)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	cards, err := h.service.ListByOwner(r.Context(), identity.UserID, identity)
	if err != nil {
		log.Error().Err(err).Msg("failed to list credit cards")
		response.InternalError(w)
		return
	}

	items := make([]*CreditCardResponse, len(cards))
	for i, c := range cards {
		items[i] = CreditCardResponseFromEntity(c)
	}
	response.OK(w, items)
}

// GetByID handles GET /credit-cards/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid credit card ID")
		return
	}

	identity := middleware.GetIdentity(r.Context())
	c, err := h.service.GetByID(r.Context(), id, identity)
	if err != nil {
		switch {
		case errors.Is(err, ErrCardNotFound):
			response.NotFound(w, "Credit card not found")
		case errors.Is(err, ErrNotCardOwner):
			response.NotAllowed(w)
		default:
			log.Error().Err(err).Msg("failed to get credit card")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, CreditCardResponseFromEntity(c))
}

// Create handles POST /credit-cards
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCreditCardRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	identity := middleware.GetIdentity(r.Context())
	c, err := h.service.Create(r.Context(), identity, &req)
	if err != nil {
		var violations validator.Violations
		switch {
		case errors.As(err, &violations):
			response.ValidationError(w, violations)
		default:
			log.Error().Err(err).Msg("failed to create credit card")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, "/api/v1/credit-cards/"+c.ID.String(), CreditCardResponseFromEntity(c))
}

// Delete handles DELETE /credit-cards/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid credit card ID")
		return
	}

	identity := middleware.GetIdentity(r.Context())
	if err := h.service.Delete(r.Context(), id, identity); err != nil {
		switch {
		case errors.Is(err, ErrCardNotFound):
			response.NotFound(w, "Credit card not found")
		case errors.Is(err, ErrNotCardOwner):
			response.NotAllowed(w)
		default:
			log.Error().Err(err).Msg("failed to delete credit card")
			response.InternalError(w)
		}
		return
	}

	response.NoContent(w)
}

// ListByOwner handles GET /users/{id}/credit-cards
func (h *Handler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	identity := middleware.GetIdentity(r.Context())
	cards, err := h.service.ListByOwner(r.Context(), ownerID, identity)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotCardOwner):
			response.NotAllowed(w)
		default:
			log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("failed to list credit cards by owner")
			response.InternalError(w)
		}
		return
	}

	items := make([]*CreditCardResponse, len(cards))
	for i, c := range cards {
		items[i] = CreditCardResponseFromEntity(c)
	}
	response.OK(w, items)
}

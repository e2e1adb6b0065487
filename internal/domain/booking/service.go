package booking

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/parkhive/parkhive-api/internal/domain/creditcard"
	"github.com/parkhive/parkhive-api/internal/domain/parking"
	"github.com/parkhive/parkhive-api/internal/domain/payment"
	"github.com/parkhive/parkhive-api/internal/domain/price"
	"github.com/parkhive/parkhive-api/internal/pkg/authz"
	"github.com/parkhive/parkhive-api/internal/pkg/lifecycle"
	"github.com/parkhive/parkhive-api/internal/pkg/validator"
)

// Violation messages shared by create and update.
const (
	MsgStartBeforeEnd = "The start date must be before the end date"
	MsgTotalPrice     = "The total price must be greater than 0."
)

// Service handles booking business logic
type Service struct {
	repo     Repository
	parkings parking.Repository
	prices   price.Repository
	cards    creditcard.Repository
}

// NewService creates booking service
func NewService(repo Repository, parkings parking.Repository, prices price.Repository, cards creditcard.Repository) *Service {
	return &Service{repo: repo, parkings: parkings, prices: prices, cards: cards}
}

// Create books a parking for the caller, persisting the booking and its
// nested payment in one transaction. Violations are collected across the
// whole aggregate before anything is written.
func (s *Service) Create(ctx context.Context, identity authz.Identity, req *CreateBookingRequest) (*Booking, *payment.Payment, error) {
	violations := validator.Violations{}
	validateDates(violations, req.StartDate, req.EndDate)
	if req.Payment.TotalPrice <= 0 {
		violations.Add("totalPrice", MsgTotalPrice)
	}
	if req.Payment.CreditCardNumber != "" {
		creditcard.ValidateNumber(violations, "creditCardNumber", req.Payment.CreditCardNumber)
	}
	if err := violations.OrNil(); err != nil {
		return nil, nil, err
	}

	pk, err := s.parkings.GetByID(ctx, req.ParkingID)
	if err != nil {
		return nil, nil, err
	}
	if pk == nil {
		return nil, nil, ErrParkingNotFound
	}

	pr, err := s.prices.GetByID(ctx, req.PriceID)
	if err != nil {
		return nil, nil, err
	}
	if pr == nil {
		return nil, nil, ErrPriceNotFound
	}
	if pr.ParkingID != pk.ID {
		return nil, nil, ErrPriceMismatch
	}

	var cardID uuid.NullUUID
	if req.Payment.CreditCardID != nil {
		card, err := s.cards.GetByID(ctx, *req.Payment.CreditCardID)
		if err != nil {
			return nil, nil, err
		}
		if card == nil {
			return nil, nil, ErrCardNotFound
		}
		if !authz.Allowed(card.OwnerID, identity) {
			return nil, nil, ErrNotCardOwner
		}
		cardID = uuid.NullUUID{UUID: card.ID, Valid: true}
	}

	now := time.Now()
	b := &Booking{
		ID:             uuid.New(),
		ParkingID:      pk.ID,
		PriceID:        pr.ID,
		ClientID:       identity.UserID,
		StatusName:     DefaultStatus,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		DataStatus:     lifecycle.StatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
		ParkingOwnerID: pk.OwnerID,
	}

	p := &payment.Payment{
		ID:           uuid.New(),
		BookingID:    b.ID,
		TotalPrice:   req.Payment.TotalPrice,
		CreditCardID: cardID,
		Status:       payment.DefaultStatus,
		DataStatus:   lifecycle.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Payment.CreditCardNumber != "" {
		p.CreditCardNumber = sql.NullString{String: req.Payment.CreditCardNumber, Valid: true}
	}

	if err := s.repo.CreateWithPayment(ctx, b, p); err != nil {
		return nil, nil, err
	}
	return b, p, nil
}

// GetByID returns a booking. Only the client, the parking owner or an
// admin may read it.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, identity authz.Identity) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if !s.isStakeholder(b, identity) {
		return nil, ErrNotStakeholder
	}
	return b, nil
}

// List returns all bookings for admins, the caller's stakes otherwise
func (s *Service) List(ctx context.Context, identity authz.Identity) ([]*Booking, error) {
	if identity.IsAdmin() {
		return s.repo.List(ctx)
	}
	return s.repo.ListByParticipant(ctx, identity.UserID)
}

// ListByClient returns a user's bookings. Only the user or an admin may
// list them.
func (s *Service) ListByClient(ctx context.Context, clientID uuid.UUID, identity authz.Identity) ([]*Booking, error) {
	if !authz.Allowed(clientID, identity) {
		return nil, ErrNotStakeholder
	}
	return s.repo.ListByClient(ctx, clientID)
}

// Update changes dates and the status label. Only the client or an admin
// may update; dates are re-validated against the merged state.
func (s *Service) Update(ctx context.Context, id uuid.UUID, identity authz.Identity, req *UpdateBookingRequest) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if !authz.Allowed(b.ClientID, identity) {
		return nil, ErrNotClient
	}

	start, end := b.StartDate, b.EndDate
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}

	violations := validator.Violations{}
	validateDates(violations, start, end)
	if err := violations.OrNil(); err != nil {
		return nil, err
	}

	b.StartDate = start
	b.EndDate = end
	if req.Status != nil {
		b.StatusName = *req.Status
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete soft-deletes a booking. The client, the parking owner or an admin
// may do so; the row stays for the payment trail.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, identity authz.Identity) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrBookingNotFound
	}
	if !s.isStakeholder(b, identity) {
		return ErrNotStakeholder
	}

	next, err := b.DataStatus.Transition(lifecycle.StatusDeleted)
	if err != nil {
		return err
	}
	b.DataStatus = next
	return s.repo.Update(ctx, b)
}

func (s *Service) isStakeholder(b *Booking, identity authz.Identity) bool {
	return authz.Allowed(b.ClientID, identity) || authz.Allowed(b.ParkingOwnerID, identity)
}

func validateDates(violations validator.Violations, start, end time.Time) {
	if !start.Before(end) {
		violations.Add("startDate", MsgStartBeforeEnd)
	}
}

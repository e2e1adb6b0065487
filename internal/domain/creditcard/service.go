package creditcard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/parkhive/parkhive-api/internal/pkg/authz"
	"github.com/parkhive/parkhive-api/internal/pkg/validator"
)

// Service handles credit card business logic
type Service struct {
	repo Repository
}

// NewService creates credit card service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a card for the caller
func (s *Service) Create(ctx context.Context, identity authz.Identity, req *CreateCreditCardRequest) (*CreditCard, error) {
	violations := validator.Violations{}
	ValidateNumber(violations, "number", req.Number)
	ValidateExpiry(violations, "expirationDate", req.ExpirationDate)
	if err := violations.OrNil(); err != nil {
		return nil, err
	}

	now := time.Now()
	c := &CreditCard{
		ID:             uuid.New(),
		OwnerID:        identity.UserID,
		Number:         req.Number,
		OwnerName:      req.OwnerName,
		ExpirationDate: req.ExpirationDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID returns a card. Only the owner or an admin may read it.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, identity authz.Identity) (*CreditCard, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCardNotFound
	}
	if !authz.Allowed(c.OwnerID, identity) {
		return nil, ErrNotCardOwner
	}
	return c, nil
}

// Delete hard-deletes a card
func (s *Service) Delete(ctx context.Context, id uuid.UUID, identity authz.Identity) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCardNotFound
	}
	if !authz.Allowed(c.OwnerID, identity) {
		return ErrNotCardOwner
	}
	return s.repo.Delete(ctx, id)
}

// ListByOwner returns a user's cards. Only the owner or an admin may list.
func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID, identity authz.Identity) ([]*CreditCard, error) {
	if !authz.Allowed(ownerID, identity) {
		return nil, ErrNotCardOwner
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

package payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/parkhive/parkhive-api/internal/pkg/authz"
	"github.com/parkhive/parkhive-api/internal/pkg/lifecycle"
)

// Service handles payment business logic. Payments are created by the
// booking service inside the booking transaction; this service covers the
// read and lifecycle operations.
type Service struct {
	repo Repository
}

// NewService creates payment service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetByID returns a payment. Only the booking client, the parking owner or
// an admin may read it.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, identity authz.Identity) (*Payment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPaymentNotFound
	}
	if !s.isStakeholder(p, identity) {
		return nil, ErrNotStakeholder
	}
	return p, nil
}

// List returns all payments for admins, the caller's stakes otherwise
func (s *Service) List(ctx context.Context, identity authz.Identity) ([]*Payment, error) {
	if identity.IsAdmin() {
		return s.repo.List(ctx)
	}
	return s.repo.ListByStakeholder(ctx, identity.UserID)
}

// UpdateStatus assigns a new status label. Any label is accepted.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, identity authz.Identity, status string) (*Payment, error) {
	p, err := s.GetByID(ctx, id, identity)
	if err != nil {
		return nil, err
	}

	p.Status = status
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete soft-deletes a payment
func (s *Service) Delete(ctx context.Context, id uuid.UUID, identity authz.Identity) error {
	p, err := s.GetByID(ctx, id, identity)
	if err != nil {
		return err
	}

	next, err := p.DataStatus.Transition(lifecycle.StatusDeleted)
	if err != nil {
		return err
	}
	p.DataStatus = next
	return s.repo.Update(ctx, p)
}

func (s *Service) isStakeholder(p *Payment, identity authz.Identity) bool {
	return authz.Allowed(p.ClientID, identity) || authz.Allowed(p.ParkingOwnerID, identity)
}

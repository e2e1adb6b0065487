package price

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/parkhive/parkhive-api/internal/domain/parking"
	"github.com/parkhive/parkhive-api/internal/pkg/authz"
	"github.com/parkhive/parkhive-api/internal/pkg/interval"
	"github.com/parkhive/parkhive-api/internal/pkg/lifecycle"
	"github.com/parkhive/parkhive-api/internal/pkg/validator"
)

// Service handles price business logic
type Service struct {
	repo     Repository
	parkings parking.Repository
}

// NewService creates price service
func NewService(repo Repository, parkings parking.Repository) *Service {
	return &Service{repo: repo, parkings: parkings}
}

// Create adds a price to a parking. Only the parking owner or an admin may
// do so, and a parking can carry at most one active price.
func (s *Service) Create(ctx context.Context, identity authz.Identity, req *CreatePriceRequest) (*Price, error) {
	pk, err := s.resolveParking(ctx, req.ParkingID, identity)
	if err != nil {
		return nil, err
	}

	violations := validator.Violations{}
	duration := validateAmountAndDuration(violations, req.Price, req.Duration)
	if err := violations.OrNil(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsActiveForParking(ctx, pk.ID, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPriceExists
	}

	now := time.Now()
	p := &Price{
		ID:         uuid.New(),
		ParkingID:  pk.ID,
		Amount:     req.Price,
		Duration:   duration,
		Currency:   req.Currency,
		DataStatus: lifecycle.StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID returns a price by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Price, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPriceNotFound
	}
	return p, nil
}

// Update applies a partial update, re-checking every invariant. Reassigning
// the price to another parking requires ownership of the target parking too.
func (s *Service) Update(ctx context.Context, id uuid.UUID, identity authz.Identity, req *UpdatePriceRequest) (*Price, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPriceNotFound
	}
	if _, err := s.resolveParking(ctx, p.ParkingID, identity); err != nil {
		return nil, err
	}

	if req.ParkingID != nil && *req.ParkingID != p.ParkingID {
		if _, err := s.resolveParking(ctx, *req.ParkingID, identity); err != nil {
			return nil, err
		}
		p.ParkingID = *req.ParkingID
	}

	amount := p.Amount
	if req.Price != nil {
		amount = *req.Price
	}
	durationStr := p.Duration.String()
	if req.Duration != nil {
		durationStr = *req.Duration
	}

	violations := validator.Violations{}
	duration := validateAmountAndDuration(violations, amount, durationStr)
	if err := violations.OrNil(); err != nil {
		return nil, err
	}

	p.Amount = amount
	p.Duration = duration
	if req.Currency != nil {
		p.Currency = *req.Currency
	}

	if p.DataStatus == lifecycle.StatusActive {
		exists, err := s.repo.ExistsActiveForParking(ctx, p.ParkingID, p.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrPriceExists
		}
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete hard-deletes a price
func (s *Service) Delete(ctx context.Context, id uuid.UUID, identity authz.Identity) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPriceNotFound
	}
	if _, err := s.resolveParking(ctx, p.ParkingID, identity); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// List returns all prices
func (s *Service) List(ctx context.Context) ([]*Price, error) {
	return s.repo.List(ctx)
}

// ListActiveByParking returns a parking's active prices
func (s *Service) ListActiveByParking(ctx context.Context, parkingID uuid.UUID) ([]*Price, error) {
	return s.repo.ListActiveByParking(ctx, parkingID)
}

func (s *Service) resolveParking(ctx context.Context, parkingID uuid.UUID, identity authz.Identity) (*parking.Parking, error) {
	pk, err := s.parkings.GetByID(ctx, parkingID)
	if err != nil {
		return nil, err
	}
	if pk == nil {
		return nil, ErrParkingNotFound
	}
	if !authz.Allowed(pk.OwnerID, identity) {
		return nil, ErrNotParkingOwner
	}
	return pk, nil
}

func validateAmountAndDuration(violations validator.Violations, amount float64, durationStr string) interval.Interval {
	if amount <= 0 {
		violations.Add("price", "The price must be greater than 0.")
	}
	duration, err := interval.Parse(durationStr)
	if err != nil {
		violations.Add("duration", "The duration is not a valid ISO-8601 interval.")
	} else if duration.IsZero() {
		violations.Add("duration", "The duration must be greater than 0 minute.")
	}
	return duration
}

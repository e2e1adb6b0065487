package parking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/parkhive/parkhive-api/internal/pkg/authz"
	"github.com/parkhive/parkhive-api/internal/pkg/geo"
	"github.com/parkhive/parkhive-api/internal/pkg/lifecycle"
	"github.com/parkhive/parkhive-api/internal/pkg/validator"
)

// Service handles parking business logic
type Service struct {
	repo Repository
}

// NewService creates parking service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new parking owned by the caller
func (s *Service) Create(ctx context.Context, identity authz.Identity, req *CreateParkingRequest) (*Parking, error) {
	point, err := geo.NewPoint(req.Latitude, req.Longitude)
	if err != nil {
		return nil, coordinateViolation(err)
	}

	enabled := true
	if req.IsEnabled != nil {
		enabled = *req.IsEnabled
	}

	now := time.Now()
	p := &Parking{
		ID:          uuid.New(),
		OwnerID:     identity.UserID,
		Name:        req.Name,
		Description: req.Description,
		Latitude:    point.Latitude,
		Longitude:   point.Longitude,
		IsEnabled:   enabled,
		DataStatus:  lifecycle.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID returns a parking by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Parking, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrParkingNotFound
	}
	return p, nil
}

// Update applies a partial update. Only the owner or an admin may update.
func (s *Service) Update(ctx context.Context, id uuid.UUID, identity authz.Identity, req *UpdateParkingRequest) (*Parking, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrParkingNotFound
	}
	if !authz.Allowed(p.OwnerID, identity) {
		return nil, ErrNotParkingOwner
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Latitude != nil || req.Longitude != nil {
		lat, lng := p.Latitude, p.Longitude
		if req.Latitude != nil {
			lat = *req.Latitude
		}
		if req.Longitude != nil {
			lng = *req.Longitude
		}
		point, err := geo.NewPoint(lat, lng)
		if err != nil {
			return nil, coordinateViolation(err)
		}
		p.Latitude = point.Latitude
		p.Longitude = point.Longitude
	}
	if req.IsEnabled != nil {
		p.IsEnabled = *req.IsEnabled
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete soft-deletes a parking and drops its prices
func (s *Service) Delete(ctx context.Context, id uuid.UUID, identity authz.Identity) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrParkingNotFound
	}
	if !authz.Allowed(p.OwnerID, identity) {
		return ErrNotParkingOwner
	}

	return s.repo.Delete(ctx, id)
}

// List returns the page of active parkings plus the total count
func (s *Service) List(ctx context.Context, pagination *Pagination) ([]*Parking, int, error) {
	return s.repo.List(ctx, pagination)
}

// ListByOwner returns all parkings owned by a user
func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Parking, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func coordinateViolation(err error) error {
	v := validator.Violations{}
	switch {
	case errors.Is(err, geo.ErrLatitudeRange):
		v.Add("latitude", "The latitude must be between -90 and 90.")
	case errors.Is(err, geo.ErrLongitudeRange):
		v.Add("longitude", "The longitude must be between -180 and 180.")
	default:
		return err
	}
	return v
}

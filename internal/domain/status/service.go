package status

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service handles status catalog business logic
type Service struct {
	repo Repository
}

// NewService creates status service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create adds a catalog entry
func (s *Service) Create(ctx context.Context, req *CreateStatusRequest) (*Status, error) {
	now := time.Now()
	st := &Status{
		ID:        uuid.New(),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// GetByID returns a catalog entry
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Status, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, ErrStatusNotFound
	}
	return st, nil
}

// Update renames a catalog entry
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateStatusRequest) (*Status, error) {
	st, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	st.Name = req.Name
	if err := s.repo.Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// Delete removes a catalog entry. Labels already assigned to bookings or
// payments are plain strings and stay as they are.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// List returns the whole catalog
func (s *Service) List(ctx context.Context) ([]*Status, error) {
	return s.repo.List(ctx)
}

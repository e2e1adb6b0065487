package user

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/parkhive/parkhive-api/internal/pkg/authz"
)

// BookingGuard counts the active bookings that block account deletion.
// Satisfied by the booking repository.
type BookingGuard interface {
	CountActiveByClient(ctx context.Context, clientID uuid.UUID) (int, error)
	CountActiveByParkingOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}

// Service handles user business logic
type Service struct {
	repo     Repository
	bookings BookingGuard
}

// NewService creates user service
func NewService(repo Repository, bookings BookingGuard) *Service {
	return &Service{repo: repo, bookings: bookings}
}

// GetByID returns a user by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Update updates the profile fields of a user. Only the account owner or an
// admin may update.
func (s *Service) Update(ctx context.Context, id uuid.UUID, identity authz.Identity, req *UpdateUserRequest) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if !authz.Allowed(u.ID, identity) {
		return nil, ErrNotResourceOwner
	}

	if req.Username != "" {
		u.Username = req.Username
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	if req.Phone != nil {
		u.Phone = sql.NullString{String: *req.Phone, Valid: *req.Phone != ""}
	}
	if req.Gender != "" {
		u.Gender = sql.NullString{String: req.Gender, Valid: true}
	}
	if req.ProfilePicture != nil {
		u.ProfilePicture = sql.NullString{String: *req.ProfilePicture, Valid: *req.ProfilePicture != ""}
	}
	u.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete soft-deletes an account. It is blocked while the user has active
// bookings on either side of the marketplace: as a client, or as the owner
// of a parking someone else booked. On success the account is anonymized
// and flipped to deleted in the same operation; the row is never removed.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, identity authz.Identity) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	if !authz.Allowed(u.ID, identity) {
		return ErrNotResourceOwner
	}

	asClient, err := s.bookings.CountActiveByClient(ctx, id)
	if err != nil {
		return err
	}
	if asClient > 0 {
		return ErrHasActiveBookings
	}

	asOwner, err := s.bookings.CountActiveByParkingOwner(ctx, id)
	if err != nil {
		return err
	}
	if asOwner > 0 {
		return ErrParkingsHaveActiveBookings
	}

	return s.repo.Anonymize(ctx, id)
}

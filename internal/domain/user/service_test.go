package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/parkhive/parkhive-api/internal/pkg/authz"
	"github.com/parkhive/parkhive-api/internal/pkg/lifecycle"
)

type fakeUserRepo struct {
	users      map[uuid.UUID]*User
	anonymized []uuid.UUID
}

func newFakeUserRepo(users ...*User) *fakeUserRepo {
	m := make(map[uuid.UUID]*User)
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Anonymize(ctx context.Context, id uuid.UUID) error {
	f.anonymized = append(f.anonymized, id)
	return nil
}

type fakeBookingGuard struct {
	asClient int
	asOwner  int
}

func (f *fakeBookingGuard) CountActiveByClient(ctx context.Context, clientID uuid.UUID) (int, error) {
	return f.asClient, nil
}

func (f *fakeBookingGuard) CountActiveByParkingOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return f.asOwner, nil
}

func testUser() *User {
	return &User{
		ID:         uuid.New(),
		Username:   "driver42",
		Email:      "driver42@example.com",
		Role:       "user",
		DataStatus: lifecycle.StatusActive,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

func TestDeleteBlockedByActiveClientBookings(t *testing.T) {
	u := testUser()
	repo := newFakeUserRepo(u)
	svc := NewService(repo, &fakeBookingGuard{asClient: 1})

	err := svc.Delete(context.Background(), u.ID, authz.Identity{UserID: u.ID, Role: "user"})
	if !errors.Is(err, ErrHasActiveBookings) {
		t.Fatalf("expected ErrHasActiveBookings, got %v", err)
	}
	if len(repo.anonymized) != 0 {
		t.Error("account must not be anonymized while bookings are active")
	}
}

func TestDeleteBlockedByActiveBookingsOnOwnedParkings(t *testing.T) {
	u := testUser()
	repo := newFakeUserRepo(u)
	svc := NewService(repo, &fakeBookingGuard{asOwner: 2})

	err := svc.Delete(context.Background(), u.ID, authz.Identity{UserID: u.ID, Role: "user"})
	if !errors.Is(err, ErrParkingsHaveActiveBookings) {
		t.Fatalf("expected ErrParkingsHaveActiveBookings, got %v", err)
	}
}

func TestDeleteAnonymizes(t *testing.T) {
	u := testUser()
	repo := newFakeUserRepo(u)
	svc := NewService(repo, &fakeBookingGuard{})

	if err := svc.Delete(context.Background(), u.ID, authz.Identity{UserID: u.ID, Role: "user"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.anonymized) != 1 || repo.anonymized[0] != u.ID {
		t.Errorf("expected anonymize call for %s, got %v", u.ID, repo.anonymized)
	}
}

func TestDeleteRequiresOwnerOrAdmin(t *testing.T) {
	u := testUser()
	repo := newFakeUserRepo(u)
	svc := NewService(repo, &fakeBookingGuard{})

	stranger := authz.Identity{UserID: uuid.New(), Role: "user"}
	if err := svc.Delete(context.Background(), u.ID, stranger); !errors.Is(err, ErrNotResourceOwner) {
		t.Fatalf("expected ErrNotResourceOwner, got %v", err)
	}

	admin := authz.Identity{UserID: uuid.New(), Role: "admin"}
	if err := svc.Delete(context.Background(), u.ID, admin); err != nil {
		t.Fatalf("admin should bypass ownership: %v", err)
	}
}

func TestUpdatePartialFields(t *testing.T) {
	u := testUser()
	repo := newFakeUserRepo(u)
	svc := NewService(repo, &fakeBookingGuard{})

	phone := "+33612345678"
	got, err := svc.Update(context.Background(), u.ID, authz.Identity{UserID: u.ID, Role: "user"}, &UpdateUserRequest{
		Phone:  &phone,
		Gender: "other",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Username != "driver42" {
		t.Errorf("untouched field changed: %s", got.Username)
	}
	if !got.Phone.Valid || got.Phone.String != phone {
		t.Errorf("phone not updated: %+v", got.Phone)
	}
	if !got.Gender.Valid || got.Gender.String != "other" {
		t.Errorf("gender not updated: %+v", got.Gender)
	}
}

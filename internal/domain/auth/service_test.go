package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/parkhive/parkhive-api/internal/domain/user"
	"github.com/parkhive/parkhive-api/internal/pkg/jwt"
	"github.com/parkhive/parkhive-api/internal/pkg/lifecycle"
	"github.com/parkhive/parkhive-api/internal/pkg/password"
)

type fakeUserRepo struct {
	users     map[uuid.UUID]*user.User
	lookupErr error
}

func newFakeUserRepo(users ...*user.User) *fakeUserRepo {
	m := make(map[uuid.UUID]*user.User)
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Anonymize(ctx context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

func newTestService(repo user.Repository) *Service {
	jwtSvc := jwt.NewService("test-secret", 15*time.Minute, 7*24*time.Hour)
	return NewService(repo, jwtSvc, nil)
}

func TestRegisterIssuesTokens(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), &RegisterRequest{
		Username: "driver42",
		Email:    "driver42@example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Tokens.AccessToken == "" || resp.Tokens.RefreshToken == "" {
		t.Error("expected access and refresh tokens")
	}
	if resp.User.Role != "user" {
		t.Errorf("new accounts must get the user role, got %q", resp.User.Role)
	}
	if resp.User.Email != "driver42@example.com" {
		t.Error("register response must use the owner view")
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	hash, _ := password.Hash("whatever1")
	existing := &user.User{
		ID:           uuid.New(),
		Username:     "driver42",
		Email:        "driver42@example.com",
		PasswordHash: hash,
		Role:         "user",
		DataStatus:   lifecycle.StatusActive,
	}
	svc := newTestService(newFakeUserRepo(existing))

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Username: "driver42",
		Email:    "other@example.com",
		Password: "s3cret-pass",
	})
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}

	_, err = svc.Register(context.Background(), &RegisterRequest{
		Username: "other",
		Email:    "driver42@example.com",
		Password: "s3cret-pass",
	})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestRegisterSurfacesLookupError(t *testing.T) {
	repo := newFakeUserRepo()
	repo.lookupErr = errors.New("connection refused")
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Username: "driver42",
		Email:    "driver42@example.com",
		Password: "s3cret-pass",
	})
	if !errors.Is(err, repo.lookupErr) {
		t.Fatalf("expected the lookup error back, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Error("no user may be created when the uniqueness check fails")
	}
}

func TestLoginVerifiesPassword(t *testing.T) {
	hash, _ := password.Hash("right-pass")
	u := &user.User{
		ID:           uuid.New(),
		Username:     "driver42",
		Email:        "driver42@example.com",
		PasswordHash: hash,
		Role:         "user",
		DataStatus:   lifecycle.StatusActive,
	}
	svc := newTestService(newFakeUserRepo(u))

	if _, err := svc.Login(context.Background(), &LoginRequest{Username: "driver42", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), &LoginRequest{Username: "nobody", Password: "right-pass"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
	if _, err := svc.Login(context.Background(), &LoginRequest{Username: "driver42", Password: "right-pass"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoginRejectsDeletedAccount(t *testing.T) {
	hash, _ := password.Hash("right-pass")
	u := &user.User{
		ID:           uuid.New(),
		Username:     "deleted_1a2b3c4d",
		PasswordHash: hash,
		Role:         "user",
		DataStatus:   lifecycle.StatusDeleted,
	}
	svc := newTestService(newFakeUserRepo(u))

	if _, err := svc.Login(context.Background(), &LoginRequest{Username: u.Username, Password: "right-pass"}); !errors.Is(err, ErrAccountDeleted) {
		t.Fatalf("expected ErrAccountDeleted, got %v", err)
	}
}

func TestRefreshWithoutStoreFails(t *testing.T) {
	// Redis disabled: issued refresh tokens are not registered anywhere,
	// so a refresh attempt must be rejected even with a valid JWT.
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), &RegisterRequest{
		Username: "driver42",
		Email:    "driver42@example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), resp.Tokens.RefreshToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
	if _, err := svc.Refresh(context.Background(), ""); !errors.Is(err, ErrRefreshTokenRequired) {
		t.Fatalf("expected ErrRefreshTokenRequired, got %v", err)
	}
}

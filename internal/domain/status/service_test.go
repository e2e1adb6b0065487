package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeStatusRepo struct {
	statuses map[uuid.UUID]*Status
}

func newFakeStatusRepo(statuses ...*Status) *fakeStatusRepo {
	m := make(map[uuid.UUID]*Status)
	for _, s := range statuses {
		m[s.ID] = s
	}
	return &fakeStatusRepo{statuses: m}
}

func (f *fakeStatusRepo) Create(ctx context.Context, s *Status) error {
	for _, existing := range f.statuses {
		if existing.Name == s.Name {
			return ErrDuplicateName
		}
	}
	f.statuses[s.ID] = s
	return nil
}

func (f *fakeStatusRepo) GetByID(ctx context.Context, id uuid.UUID) (*Status, error) {
	return f.statuses[id], nil
}

func (f *fakeStatusRepo) Update(ctx context.Context, s *Status) error {
	f.statuses[s.ID] = s
	return nil
}

func (f *fakeStatusRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.statuses, id)
	return nil
}

func (f *fakeStatusRepo) List(ctx context.Context) ([]*Status, error) {
	var out []*Status
	for _, s := range f.statuses {
		out = append(out, s)
	}
	return out, nil
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	existing := &Status{ID: uuid.New(), Name: "Pending", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	svc := NewService(newFakeStatusRepo(existing))

	if _, err := svc.Create(context.Background(), &CreateStatusRequest{Name: "Pending"}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
	if _, err := svc.Create(context.Background(), &CreateStatusRequest{Name: "Confirmed"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRenameAndDelete(t *testing.T) {
	existing := &Status{ID: uuid.New(), Name: "Pending", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	repo := newFakeStatusRepo(existing)
	svc := NewService(repo)

	got, err := svc.Update(context.Background(), existing.ID, &UpdateStatusRequest{Name: "Awaiting"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Awaiting" {
		t.Errorf("name not updated: %q", got.Name)
	}

	if err := svc.Delete(context.Background(), existing.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), existing.ID); !errors.Is(err, ErrStatusNotFound) {
		t.Errorf("expected ErrStatusNotFound after delete, got %v", err)
	}
}

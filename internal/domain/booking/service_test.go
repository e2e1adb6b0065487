package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/parkhive/parkhive-api/internal/domain/creditcard"
	"github.com/parkhive/parkhive-api/internal/domain/parking"
	"github.com/parkhive/parkhive-api/internal/domain/payment"
	"github.com/parkhive/parkhive-api/internal/domain/price"
	"github.com/parkhive/parkhive-api/internal/pkg/authz"
	"github.com/parkhive/parkhive-api/internal/pkg/interval"
	"github.com/parkhive/parkhive-api/internal/pkg/lifecycle"
	"github.com/parkhive/parkhive-api/internal/pkg/validator"
)

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*Booking
	payments map[uuid.UUID]*payment.Payment
}

func newFakeBookingRepo(bookings ...*Booking) *fakeBookingRepo {
	m := make(map[uuid.UUID]*Booking)
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeBookingRepo{bookings: m, payments: make(map[uuid.UUID]*payment.Payment)}
}

func (f *fakeBookingRepo) CreateWithPayment(ctx context.Context, b *Booking, p *payment.Payment) error {
	b.PaymentID = uuid.NullUUID{UUID: p.ID, Valid: true}
	f.bookings[b.ID] = b
	f.payments[p.ID] = p
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	b := f.bookings[id]
	if b == nil || b.DataStatus.IsDeleted() {
		return nil, nil
	}
	return b, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, b *Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingRepo) List(ctx context.Context) ([]*Booking, error) {
	var out []*Booking
	for _, b := range f.bookings {
		if !b.DataStatus.IsDeleted() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*Booking, error) {
	var out []*Booking
	for _, b := range f.bookings {
		if b.DataStatus.IsDeleted() {
			continue
		}
		if b.ClientID == userID || b.ParkingOwnerID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*Booking, error) {
	var out []*Booking
	for _, b := range f.bookings {
		if !b.DataStatus.IsDeleted() && b.ClientID == clientID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountActiveByClient(ctx context.Context, clientID uuid.UUID) (int, error) {
	n := 0
	for _, b := range f.bookings {
		if b.ClientID == clientID && b.DataStatus == lifecycle.StatusActive {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) CountActiveByParkingOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	n := 0
	for _, b := range f.bookings {
		if b.ParkingOwnerID == ownerID && b.DataStatus == lifecycle.StatusActive {
			n++
		}
	}
	return n, nil
}

type fakeParkingRepo struct {
	parkings map[uuid.UUID]*parking.Parking
}

func (f *fakeParkingRepo) Create(ctx context.Context, p *parking.Parking) error { return nil }
func (f *fakeParkingRepo) Update(ctx context.Context, p *parking.Parking) error { return nil }
func (f *fakeParkingRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }

func (f *fakeParkingRepo) GetByID(ctx context.Context, id uuid.UUID) (*parking.Parking, error) {
	return f.parkings[id], nil
}

func (f *fakeParkingRepo) List(ctx context.Context, pagination *parking.Pagination) ([]*parking.Parking, int, error) {
	return nil, 0, nil
}

func (f *fakeParkingRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*parking.Parking, error) {
	return nil, nil
}

type fakePriceRepo struct {
	prices map[uuid.UUID]*price.Price
}

func (f *fakePriceRepo) Create(ctx context.Context, p *price.Price) error { return nil }
func (f *fakePriceRepo) Update(ctx context.Context, p *price.Price) error { return nil }
func (f *fakePriceRepo) Delete(ctx context.Context, id uuid.UUID) error   { return nil }
func (f *fakePriceRepo) List(ctx context.Context) ([]*price.Price, error) { return nil, nil }

func (f *fakePriceRepo) GetByID(ctx context.Context, id uuid.UUID) (*price.Price, error) {
	return f.prices[id], nil
}

func (f *fakePriceRepo) ListActiveByParking(ctx context.Context, parkingID uuid.UUID) ([]*price.Price, error) {
	return nil, nil
}

func (f *fakePriceRepo) ExistsActiveForParking(ctx context.Context, parkingID uuid.UUID, excludeID uuid.UUID) (bool, error) {
	return false, nil
}

type fakeCardRepo struct {
	cards map[uuid.UUID]*creditcard.CreditCard
}

func (f *fakeCardRepo) Create(ctx context.Context, c *creditcard.CreditCard) error { return nil }
func (f *fakeCardRepo) Delete(ctx context.Context, id uuid.UUID) error             { return nil }

func (f *fakeCardRepo) GetByID(ctx context.Context, id uuid.UUID) (*creditcard.CreditCard, error) {
	return f.cards[id], nil
}

func (f *fakeCardRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*creditcard.CreditCard, error) {
	return nil, nil
}

type fixture struct {
	repo    *fakeBookingRepo
	svc     *Service
	parking *parking.Parking
	price   *price.Price
	card    *creditcard.CreditCard
	client  authz.Identity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ownerID := uuid.New()
	clientID := uuid.New()
	pk := &parking.Parking{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Name:       "Main street lot",
		DataStatus: lifecycle.StatusActive,
	}
	duration, err := interval.Parse("PT1H")
	if err != nil {
		t.Fatalf("parse interval: %v", err)
	}
	pr := &price.Price{
		ID:         uuid.New(),
		ParkingID:  pk.ID,
		Amount:     2.5,
		Duration:   duration,
		Currency:   "EUR",
		DataStatus: lifecycle.StatusActive,
	}
	card := &creditcard.CreditCard{
		ID:             uuid.New(),
		OwnerID:        clientID,
		Number:         "4111111111111111",
		OwnerName:      "Jean Dupont",
		ExpirationDate: time.Now().AddDate(2, 0, 0),
	}

	repo := newFakeBookingRepo()
	svc := NewService(repo,
		&fakeParkingRepo{parkings: map[uuid.UUID]*parking.Parking{pk.ID: pk}},
		&fakePriceRepo{prices: map[uuid.UUID]*price.Price{pr.ID: pr}},
		&fakeCardRepo{cards: map[uuid.UUID]*creditcard.CreditCard{card.ID: card}},
	)
	return &fixture{
		repo:    repo,
		svc:     svc,
		parking: pk,
		price:   pr,
		card:    card,
		client:  authz.Identity{UserID: clientID, Role: "user"},
	}
}

func (f *fixture) validRequest() *CreateBookingRequest {
	start := time.Now().Add(24 * time.Hour)
	return &CreateBookingRequest{
		ParkingID: f.parking.ID,
		PriceID:   f.price.ID,
		StartDate: start,
		EndDate:   start.Add(2 * time.Hour),
		Payment:   PaymentRequest{TotalPrice: 5},
	}
}

func TestCreateCollectsAggregateViolations(t *testing.T) {
	f := newFixture(t)

	start := time.Now().Add(24 * time.Hour)
	req := &CreateBookingRequest{
		ParkingID: f.parking.ID,
		PriceID:   f.price.ID,
		StartDate: start,
		EndDate:   start.Add(-time.Hour),
		Payment:   PaymentRequest{TotalPrice: 0, CreditCardNumber: "1234"},
	}

	_, _, err := f.svc.Create(context.Background(), f.client, req)
	var v validator.Violations
	if !errors.As(err, &v) {
		t.Fatalf("expected violations, got %v", err)
	}
	if v["startDate"] != MsgStartBeforeEnd {
		t.Errorf("startDate message: %q", v["startDate"])
	}
	if v["totalPrice"] != MsgTotalPrice {
		t.Errorf("totalPrice message: %q", v["totalPrice"])
	}
	if v["creditCardNumber"] != creditcard.MsgNumberLength {
		t.Errorf("creditCardNumber message: %q", v["creditCardNumber"])
	}
}

func TestCreateEqualDatesRejected(t *testing.T) {
	f := newFixture(t)

	req := f.validRequest()
	req.EndDate = req.StartDate

	_, _, err := f.svc.Create(context.Background(), f.client, req)
	var v validator.Violations
	if !errors.As(err, &v) {
		t.Fatalf("expected violations, got %v", err)
	}
	if v["startDate"] != MsgStartBeforeEnd {
		t.Errorf("startDate message: %q", v["startDate"])
	}
}

func TestCreateRejectsForeignPrice(t *testing.T) {
	f := newFixture(t)
	f.price.ParkingID = uuid.New() // belongs elsewhere

	_, _, err := f.svc.Create(context.Background(), f.client, f.validRequest())
	if !errors.Is(err, ErrPriceMismatch) {
		t.Fatalf("expected ErrPriceMismatch, got %v", err)
	}
}

func TestCreateRejectsForeignCard(t *testing.T) {
	f := newFixture(t)
	f.card.OwnerID = uuid.New() // someone else's card

	req := f.validRequest()
	req.Payment.CreditCardID = &f.card.ID

	_, _, err := f.svc.Create(context.Background(), f.client, req)
	if !errors.Is(err, ErrNotCardOwner) {
		t.Fatalf("expected ErrNotCardOwner, got %v", err)
	}
}

func TestCreatePersistsBookingAndPayment(t *testing.T) {
	f := newFixture(t)

	req := f.validRequest()
	req.Payment.CreditCardID = &f.card.ID

	b, p, err := f.svc.Create(context.Background(), f.client, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.StatusName != DefaultStatus {
		t.Errorf("expected default status, got %q", b.StatusName)
	}
	if !b.PaymentID.Valid || b.PaymentID.UUID != p.ID {
		t.Error("booking must reference its payment")
	}
	if p.BookingID != b.ID {
		t.Error("payment must reference its booking")
	}
	if !p.CreditCardID.Valid || p.CreditCardID.UUID != f.card.ID {
		t.Error("payment must carry the card reference")
	}
	if len(f.repo.payments) != 1 {
		t.Error("payment must be persisted with the booking")
	}
}

func TestUpdateRevalidatesMergedDates(t *testing.T) {
	f := newFixture(t)

	b, _, err := f.svc.Create(context.Background(), f.client, f.validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	badEnd := b.StartDate.Add(-time.Hour)
	_, err = f.svc.Update(context.Background(), b.ID, f.client, &UpdateBookingRequest{EndDate: &badEnd})
	var v validator.Violations
	if !errors.As(err, &v) {
		t.Fatalf("expected violations, got %v", err)
	}
	if v["startDate"] != MsgStartBeforeEnd {
		t.Errorf("startDate message: %q", v["startDate"])
	}
}

func TestUpdateClientOnly(t *testing.T) {
	f := newFixture(t)

	b, _, err := f.svc.Create(context.Background(), f.client, f.validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status := "Confirmed"
	owner := authz.Identity{UserID: f.parking.OwnerID, Role: "user"}
	if _, err := f.svc.Update(context.Background(), b.ID, owner, &UpdateBookingRequest{Status: &status}); !errors.Is(err, ErrNotClient) {
		t.Fatalf("space owner must not update bookings, got %v", err)
	}

	got, err := f.svc.Update(context.Background(), b.ID, f.client, &UpdateBookingRequest{Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StatusName != "Confirmed" {
		t.Errorf("status not updated: %q", got.StatusName)
	}
}

func TestDeleteSoftDeletesForStakeholders(t *testing.T) {
	f := newFixture(t)

	b, _, err := f.svc.Create(context.Background(), f.client, f.validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stranger := authz.Identity{UserID: uuid.New(), Role: "user"}
	if err := f.svc.Delete(context.Background(), b.ID, stranger); !errors.Is(err, ErrNotStakeholder) {
		t.Fatalf("expected ErrNotStakeholder, got %v", err)
	}

	owner := authz.Identity{UserID: f.parking.OwnerID, Role: "user"}
	if err := f.svc.Delete(context.Background(), b.ID, owner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The row stays, flagged deleted, and drops out of reads.
	if got := f.repo.bookings[b.ID].DataStatus; got != lifecycle.StatusDeleted {
		t.Errorf("expected deleted, got %s", got)
	}
	if _, err := f.svc.GetByID(context.Background(), b.ID, f.client); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("expected ErrBookingNotFound after delete, got %v", err)
	}
	items, err := f.svc.List(context.Background(), f.client)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("deleted booking still listed: %d rows", len(items))
	}
}

func TestGetStakeholderGate(t *testing.T) {
	f := newFixture(t)

	b, _, err := f.svc.Create(context.Background(), f.client, f.validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.svc.GetByID(context.Background(), b.ID, f.client); err != nil {
		t.Errorf("client read failed: %v", err)
	}
	owner := authz.Identity{UserID: f.parking.OwnerID, Role: "user"}
	if _, err := f.svc.GetByID(context.Background(), b.ID, owner); err != nil {
		t.Errorf("owner read failed: %v", err)
	}
	stranger := authz.Identity{UserID: uuid.New(), Role: "user"}
	if _, err := f.svc.GetByID(context.Background(), b.ID, stranger); !errors.Is(err, ErrNotStakeholder) {
		t.Errorf("expected ErrNotStakeholder, got %v", err)
	}
}

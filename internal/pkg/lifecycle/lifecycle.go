package lifecycle

import "errors"

// ErrInvalidTransition is returned when a data status move is not allowed.
var ErrInvalidTransition = errors.New("invalid data status transition")

// DataStatus is the record lifecycle tag carried by every major entity.
// It is distinct from the workflow status label on bookings and payments.
type DataStatus string

const (
	StatusActive    DataStatus = "active"
	StatusDeleted   DataStatus = "deleted"
	StatusArchived  DataStatus = "archived"
	StatusDraft     DataStatus = "draft"
	StatusPending   DataStatus = "pending"
	StatusCancelled DataStatus = "cancelled"
	StatusMock      DataStatus = "mock"
)

// transitions is the closed graph of legal moves. Deleted is terminal.
var transitions = map[DataStatus][]DataStatus{
	StatusDraft:     {StatusActive, StatusDeleted},
	StatusPending:   {StatusActive, StatusCancelled, StatusDeleted},
	StatusActive:    {StatusArchived, StatusCancelled, StatusDeleted},
	StatusArchived:  {StatusActive, StatusDeleted},
	StatusCancelled: {StatusDeleted},
	StatusMock:      {StatusDeleted},
}

// IsValid reports whether s is a known data status value.
func (s DataStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusDeleted, StatusArchived, StatusDraft,
		StatusPending, StatusCancelled, StatusMock:
		return true
	}
	return false
}

// IsDeleted reports whether the record is soft-deleted.
func (s DataStatus) IsDeleted() bool {
	return s == StatusDeleted
}

// CanTransition reports whether moving from s to next is allowed.
// Staying in place is always allowed.
func (s DataStatus) CanTransition(next DataStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition returns next if the move from s is legal.
func (s DataStatus) Transition(next DataStatus) (DataStatus, error) {
	if !next.IsValid() {
		return s, ErrInvalidTransition
	}
	if !s.CanTransition(next) {
		return s, ErrInvalidTransition
	}
	return next, nil
}

package domain

import (
	"context"
	"time"
)

// Registration links a user to an event and consumes one place.
// The (UserID, EventID) pair is unique.
// swagger:model Registration
type Registration struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	EventID          string    `json:"event_id"`
	RegistrationDate time.Time `json:"registration_date"`
}

// NewRegistration creates a new Registration. ID is set by the service before insert.
func NewRegistration(userID, eventID string, registeredAt time.Time) *Registration {
	return &Registration{
		UserID:           userID,
		EventID:          eventID,
		RegistrationDate: registeredAt,
	}
}

// RegistrationRepository is the registration ledger. Only the reservation
// service mutates it, always in the same transaction as the event's places_left.
type RegistrationRepository interface {
	// Insert returns ErrDuplicateRegistration when the pair already exists.
	Insert(ctx context.Context, reg *Registration) error
	// DeleteByPair reports whether a registration existed and was removed.
	DeleteByPair(ctx context.Context, userID, eventID string) (bool, error)
	CountByEvent(ctx context.Context, eventID string) (int, error)
	ListByUser(ctx context.Context, userID string) ([]*Registration, error)
	ListByEvent(ctx context.Context, eventID string) ([]*Registration, error)
	DeleteByEvent(ctx context.Context, eventID string) (int64, error)
}

// RegistrationWithEvent bundles a registration with its related event.
type RegistrationWithEvent struct {
	Registration *Registration `json:"registration"`
	Event        *Event        `json:"event"`
}

// ReservationResult is returned by register/unregister operations.
type ReservationResult struct {
	Message      string        `json:"message"`
	Registration *Registration `json:"registration,omitempty"`
	PlacesLeft   int           `json:"places_left"`
}

// Transactor runs fn in a single storage transaction. Repositories called with
// the ctx passed to fn take part in that transaction. If fn returns an error
// or ctx is cancelled before commit, nothing fn wrote is persisted.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReservationService is the only component that mutates places_left and the registration ledger.
type ReservationService interface {
	RegisterUserOnEvent(ctx context.Context, userID, eventID string) (*ReservationResult, error)
	UnregisterUserOnEvent(ctx context.Context, userID, eventID string) (*ReservationResult, error)
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	UpdateEvent(ctx context.Context, event *Event) (*Event, error)
	DeleteEvent(ctx context.Context, id string) (*Event, error)
	SetEventPicture(ctx context.Context, eventID, picture string) (*Event, error)
}

package domain

import (
	"context"
	"time"
)

// Event is a capacity-limited event users can register for.
// PlacesLeft is derived: MaxParticipants minus the number of registrations.
// swagger:model Event
type Event struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	Place           string    `json:"place"`
	Category        string    `json:"category"`
	MaxParticipants int       `json:"max_participants"`
	Picture         *string   `json:"picture,omitempty"`
	PlacesLeft      int       `json:"places_left"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with no registrations. ID is set by the service on create.
func NewEvent(name, description, place, category string, date time.Time, maxParticipants int) *Event {
	return &Event{
		Name:            name,
		Description:     description,
		Date:            date,
		Place:           place,
		Category:        category,
		MaxParticipants: maxParticipants,
		PlacesLeft:      maxParticipants,
	}
}

// EventFilter narrows event listings. Empty fields are ignored; set fields combine with AND.
type EventFilter struct {
	Name     string
	Category string
	Place    string
	Date     *time.Time
}

// IsEmpty reports whether no filter field is set.
func (f EventFilter) IsEmpty() bool {
	return f.Name == "" && f.Category == "" && f.Place == "" && f.Date == nil
}

// EventRepository defines the interface for event storage.
// Methods run inside the transaction carried by ctx, if any.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// GetByIDForUpdate loads the event and locks its row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (*Event, error)
	GetByName(ctx context.Context, name string) (*Event, error)
	List(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	ListFiltered(ctx context.Context, filter EventFilter) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	UpdatePlacesLeft(ctx context.Context, id string, placesLeft int) error
	UpdatePicture(ctx context.Context, id, picture string) error
	Delete(ctx context.Context, id string) error
}

// EventQueryService is the read-only façade over the event catalog.
type EventQueryService interface {
	GetEventByID(ctx context.Context, id string) (*Event, error)
	GetEventByName(ctx context.Context, name string) (*Event, error)
	ListEvents(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	FilterEvents(ctx context.Context, filter EventFilter) ([]*Event, error)
	ListUserEvents(ctx context.Context, userID string) ([]*RegistrationWithEvent, error)
}

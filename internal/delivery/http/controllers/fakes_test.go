package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeQueries implements domain.EventQueryService for handler tests.
type fakeQueries struct {
	event      *domain.Event
	events     []*domain.Event
	total      int
	userEvents []*domain.RegistrationWithEvent
	err        error

	lastID     string
	lastName   string
	lastParams domain.PaginationParams
	lastFilter domain.EventFilter
	lastUserID string
}

func (f *fakeQueries) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	f.lastID = id
	return f.event, f.err
}

func (f *fakeQueries) GetEventByName(ctx context.Context, name string) (*domain.Event, error) {
	f.lastName = name
	return f.event, f.err
}

func (f *fakeQueries) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	f.lastParams = params
	return f.events, f.total, f.err
}

func (f *fakeQueries) FilterEvents(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	f.lastFilter = filter
	return f.events, f.err
}

func (f *fakeQueries) ListUserEvents(ctx context.Context, userID string) ([]*domain.RegistrationWithEvent, error) {
	f.lastUserID = userID
	return f.userEvents, f.err
}

// fakeReservations implements domain.ReservationService for handler tests.
type fakeReservations struct {
	result *domain.ReservationResult
	event  *domain.Event
	err    error

	lastUserID  string
	lastEventID string
	lastEvent   *domain.Event
	lastPicture string
	calls       int
}

func (f *fakeReservations) RegisterUserOnEvent(ctx context.Context, userID, eventID string) (*domain.ReservationResult, error) {
	f.calls++
	f.lastUserID, f.lastEventID = userID, eventID
	return f.result, f.err
}

func (f *fakeReservations) UnregisterUserOnEvent(ctx context.Context, userID, eventID string) (*domain.ReservationResult, error) {
	f.calls++
	f.lastUserID, f.lastEventID = userID, eventID
	return f.result, f.err
}

func (f *fakeReservations) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	f.calls++
	f.lastEvent = event
	if f.err != nil {
		return nil, f.err
	}
	created := *event
	created.ID = "new-id"
	return &created, nil
}

func (f *fakeReservations) UpdateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	f.calls++
	f.lastEvent = event
	if f.err != nil {
		return nil, f.err
	}
	return event, nil
}

func (f *fakeReservations) DeleteEvent(ctx context.Context, id string) (*domain.Event, error) {
	f.calls++
	f.lastEventID = id
	return f.event, f.err
}

func (f *fakeReservations) SetEventPicture(ctx context.Context, eventID, picture string) (*domain.Event, error) {
	f.calls++
	f.lastEventID, f.lastPicture = eventID, picture
	return f.event, f.err
}

// envelope decodes the standard response envelope with data kept raw.
type envelope struct {
	Data  json.RawMessage   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env
}

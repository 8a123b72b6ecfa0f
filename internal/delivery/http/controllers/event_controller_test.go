package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventbooking/internal/clock"
	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
	"eventbooking/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newEventController(q *fakeQueries, res *fakeReservations) *EventController {
	return NewEventController(testLogger, q, res, validation.New(clock.NewFixed(now)))
}

func eventBody(mutate func(m map[string]any)) string {
	m := map[string]any{
		"name":             "Go Meetup",
		"description":      "Talks and pizza",
		"place":            "Berlin",
		"category":         "tech",
		"date":             now.Add(48 * time.Hour).Format(time.RFC3339),
		"max_participants": 20,
	}
	if mutate != nil {
		mutate(m)
	}
	b, _ := json.Marshal(m)
	return string(b)
}

func TestEventController_ListEvents(t *testing.T) {
	q := &fakeQueries{events: []*domain.Event{{ID: "e1", Name: "A"}}, total: 21}
	c := newEventController(q, &fakeReservations{})

	req := httptest.NewRequest(http.MethodGet, "/events?page=2&page_size=10", nil)
	rr := httptest.NewRecorder()
	c.ListEvents(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.PaginationParams{Page: 2, PageSize: 10}, q.lastParams)

	var data EventListResponse
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &data))
	require.Len(t, data.Events, 1)
	assert.Equal(t, helpers.PaginationMeta{Page: 2, PageSize: 10, Total: 21, TotalPages: 3}, data.Pagination)
}

func TestEventController_GetEventByID(t *testing.T) {
	tests := []struct {
		name       string
		q          *fakeQueries
		wantStatus int
		wantCode   string
	}{
		{name: "found", q: &fakeQueries{event: &domain.Event{ID: "e1"}}, wantStatus: http.StatusOK},
		{name: "not found", q: &fakeQueries{err: domain.NewNotFound(domain.KindEvent, "e1")}, wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeEventNotFound},
		{name: "transient", q: &fakeQueries{err: fmt.Errorf("query: %w", domain.ErrTransient)}, wantStatus: http.StatusServiceUnavailable, wantCode: helpers.ErrCodeTransient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newEventController(tt.q, &fakeReservations{})
			req := httptest.NewRequest(http.MethodGet, "/events/e1", nil)
			req.SetPathValue("eventID", "e1")
			rr := httptest.NewRecorder()
			c.GetEventByID(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "e1", tt.q.lastID)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode(t, rr).Error.Code)
			}
		})
	}
}

func TestEventController_GetEventByName(t *testing.T) {
	q := &fakeQueries{event: &domain.Event{ID: "e1", Name: "Go Meetup"}}
	c := newEventController(q, &fakeReservations{})

	req := httptest.NewRequest(http.MethodGet, "/events/by-name/Go%20Meetup", nil)
	req.SetPathValue("name", "Go Meetup")
	rr := httptest.NewRecorder()
	c.GetEventByName(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Go Meetup", q.lastName)
}

func TestEventController_FilterEvents(t *testing.T) {
	t.Run("parses filters", func(t *testing.T) {
		q := &fakeQueries{}
		c := newEventController(q, &fakeReservations{})
		req := httptest.NewRequest(http.MethodGet, "/events/filter?category=tech&place=Berlin&date=2026-03-05", nil)
		rr := httptest.NewRecorder()
		c.FilterEvents(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "tech", q.lastFilter.Category)
		assert.Equal(t, "Berlin", q.lastFilter.Place)
		require.NotNil(t, q.lastFilter.Date)
		assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), *q.lastFilter.Date)
		assert.JSONEq(t, `[]`, string(decode(t, rr).Data))
	})

	t.Run("bad date", func(t *testing.T) {
		c := newEventController(&fakeQueries{}, &fakeReservations{})
		req := httptest.NewRequest(http.MethodGet, "/events/filter?date=05/03/2026", nil)
		rr := httptest.NewRecorder()
		c.FilterEvents(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		env := decode(t, rr)
		assert.Equal(t, helpers.ErrCodeValidationFailed, env.Error.Code)
		require.Len(t, env.Error.Details, 1)
		assert.Equal(t, "date", env.Error.Details[0].Field)
	})
}

func TestEventController_CreateEvent(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		res         *fakeReservations
		wantStatus  int
		wantCode    string
		wantFields  []string
		wantService bool
	}{
		{
			name:        "created",
			body:        eventBody(nil),
			res:         &fakeReservations{},
			wantStatus:  http.StatusCreated,
			wantService: true,
		},
		{
			name: "validation details",
			body: eventBody(func(m map[string]any) {
				m["name"] = ""
				m["max_participants"] = 0
				m["date"] = now.Add(-time.Hour).Format(time.RFC3339)
			}),
			res:        &fakeReservations{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeValidationFailed,
			wantFields: []string{"name", "max_participants", "date"},
		},
		{
			name:       "unknown field",
			body:       eventBody(func(m map[string]any) { m["owner"] = "x" }),
			res:        &fakeReservations{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:        "service failure",
			body:        eventBody(nil),
			res:         &fakeReservations{err: fmt.Errorf("boom")},
			wantStatus:  http.StatusInternalServerError,
			wantCode:    helpers.ErrCodeInternalError,
			wantService: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newEventController(&fakeQueries{}, tt.res)
			req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			c.CreateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantService, tt.res.calls > 0)
			env := decode(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				assert.NotContains(t, env.Error.Message, "boom")
			}
			if len(tt.wantFields) > 0 {
				var got []string
				for _, d := range env.Error.Details {
					got = append(got, d.Field)
				}
				assert.ElementsMatch(t, tt.wantFields, got)
			}
			if tt.wantStatus == http.StatusCreated {
				var ev domain.Event
				require.NoError(t, json.Unmarshal(env.Data, &ev))
				assert.Equal(t, "new-id", ev.ID)
				assert.Equal(t, 20, tt.res.lastEvent.MaxParticipants)
				assert.Equal(t, 20, tt.res.lastEvent.PlacesLeft)
			}
		})
	}
}

func TestEventController_UpdateEvent(t *testing.T) {
	t.Run("capacity below occupancy", func(t *testing.T) {
		res := &fakeReservations{err: fmt.Errorf("cannot reduce capacity below current registrations: %w", domain.ErrCapacityExceeded)}
		c := newEventController(&fakeQueries{}, res)
		req := httptest.NewRequest(http.MethodPut, "/events/e1", strings.NewReader(eventBody(nil)))
		req.SetPathValue("eventID", "e1")
		rr := httptest.NewRecorder()
		c.UpdateEvent(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "e1", res.lastEvent.ID)
		env := decode(t, rr)
		assert.Equal(t, helpers.ErrCodeCapacityExceeded, env.Error.Code)
		assert.Contains(t, env.Error.Message, "cannot reduce capacity")
	})

	t.Run("updated", func(t *testing.T) {
		res := &fakeReservations{}
		c := newEventController(&fakeQueries{}, res)
		req := httptest.NewRequest(http.MethodPut, "/events/e1", strings.NewReader(eventBody(func(m map[string]any) { m["place"] = "Paris" })))
		req.SetPathValue("eventID", "e1")
		rr := httptest.NewRecorder()
		c.UpdateEvent(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Paris", res.lastEvent.Place)
	})
}

func TestEventController_DeleteEvent(t *testing.T) {
	res := &fakeReservations{event: &domain.Event{ID: "e1", Name: "Go Meetup"}}
	c := newEventController(&fakeQueries{}, res)
	req := httptest.NewRequest(http.MethodDelete, "/events/e1", nil)
	req.SetPathValue("eventID", "e1")
	rr := httptest.NewRecorder()
	c.DeleteEvent(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "e1", res.lastEventID)
	var ev domain.Event
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &ev))
	assert.Equal(t, "Go Meetup", ev.Name)
}

func TestEventController_SetEventPicture(t *testing.T) {
	pic := "pictures/e1.png"
	res := &fakeReservations{event: &domain.Event{ID: "e1", Picture: &pic}}
	c := newEventController(&fakeQueries{}, res)

	req := httptest.NewRequest(http.MethodPut, "/events/e1/picture", strings.NewReader(`{"picture":"pictures/e1.png"}`))
	req.SetPathValue("eventID", "e1")
	rr := httptest.NewRecorder()
	c.SetEventPicture(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, pic, res.lastPicture)

	req = httptest.NewRequest(http.MethodPut, "/events/e1/picture", strings.NewReader(`{"picture":""}`))
	req.SetPathValue("eventID", "e1")
	rr = httptest.NewRecorder()
	c.SetEventPicture(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, helpers.ErrCodeValidationFailed, decode(t, rr).Error.Code)
}

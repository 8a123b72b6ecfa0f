package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

// filterDateLayout is the format of the date query parameter on GET /events/filter.
const filterDateLayout = "2006-01-02"

// EventRequest is the request body for POST /events and PUT /events/{eventID}.
type EventRequest struct {
	Name            string    `json:"name" validate:"required,min=2,max=50"`
	Description     string    `json:"description" validate:"required,min=2,max=300"`
	Place           string    `json:"place" validate:"required,min=2,max=50"`
	Category        string    `json:"category" validate:"required,min=2,max=30"`
	Date            time.Time `json:"date" validate:"required,future"`
	MaxParticipants int       `json:"max_participants" validate:"gt=0"`
	Picture         *string   `json:"picture,omitempty" validate:"omitempty,min=1,max=500"`
}

func (req EventRequest) toEvent() *domain.Event {
	ev := domain.NewEvent(req.Name, req.Description, req.Place, req.Category, req.Date, req.MaxParticipants)
	ev.Picture = req.Picture
	return ev
}

// PictureRequest is the request body for PUT /events/{eventID}/picture.
type PictureRequest struct {
	Picture string `json:"picture" validate:"required,max=500"`
}

// EventSuccessResponse is the success response envelope for endpoints returning one event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListResponse is the data payload of GET /events.
type EventListResponse struct {
	Events     []*domain.Event        `json:"events"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// EventListSuccessResponse is the success response envelope for GET /events.
type EventListSuccessResponse struct {
	Data  EventListResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventFilterSuccessResponse is the success response envelope for GET /events/filter.
type EventFilterSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger       *slog.Logger
	Queries      domain.EventQueryService
	Reservations domain.ReservationService
	Validator    helpers.StructValidator
}

func NewEventController(logger *slog.Logger, queries domain.EventQueryService, reservations domain.ReservationService, v helpers.StructValidator) *EventController {
	return &EventController{
		Logger:       logger,
		Queries:      queries,
		Reservations: reservations,
		Validator:    v,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns one page of events ordered by name.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 10, max 50)"
// @Success 200 {object} controllers.EventListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 503 {object} helpers.APIResponse "error.code: transient"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	events, total, err := c.Queries.ListEvents(r.Context(), params)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventListResponse{
		Events:     events,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// GetEventByID godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: event_not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Queries.GetEventByID(r.Context(), eventID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// GetEventByName godoc
// @Summary Get an event by name
// @Description When several events share a name the earliest one is returned.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param name path string true "Event name"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: event_not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/by-name/{name} [get]
func (c *EventController) GetEventByName(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing name")
		return
	}
	event, err := c.Queries.GetEventByName(r.Context(), name)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// FilterEvents godoc
// @Summary Filter events
// @Description Set parameters combine with AND. date matches the whole calendar day (UTC).
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category"
// @Param place query string false "Place"
// @Param name query string false "Name"
// @Param date query string false "Day, YYYY-MM-DD"
// @Success 200 {object} controllers.EventFilterSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/filter [get]
func (c *EventController) FilterEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.EventFilter{
		Category: q.Get("category"),
		Place:    q.Get("place"),
		Name:     q.Get("name"),
	}
	if s := q.Get("date"); s != "" {
		day, err := time.Parse(filterDateLayout, s)
		if err != nil {
			helpers.WriteValidationError(w, &domain.ValidationError{Fields: []domain.FieldError{{
				Field: "date", Rule: "datetime", Message: "date must use the YYYY-MM-DD format",
			}}})
			return
		}
		filter.Date = &day
	}
	events, err := c.Queries.FilterEvents(r.Context(), filter)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates an event with all places free. Admin only.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req, c.Validator) {
		return
	}
	event, err := c.Reservations.CreateEvent(r.Context(), req.toEvent())
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Replaces the event fields. Lowering max_participants below the current registrations fails with capacity_exceeded. Admin only.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param event body EventRequest true "Event data"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: event_not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: capacity_exceeded"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req, c.Validator) {
		return
	}
	ev := req.toEvent()
	ev.ID = eventID
	event, err := c.Reservations.UpdateEvent(r.Context(), ev)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event and all its registrations. Returns the deleted event. Admin only.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the deleted event"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: event_not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Reservations.DeleteEvent(r.Context(), eventID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// SetEventPicture godoc
// @Summary Set the event picture
// @Description Records a reference (URL or storage key) to the event picture. Admin only.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body PictureRequest true "Picture reference"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: event_not_found"
// @Router /events/{eventID}/picture [put]
func (c *EventController) SetEventPicture(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req PictureRequest
	if !helpers.DecodeAndValidate(w, r, &req, c.Validator) {
		return
	}
	event, err := c.Reservations.SetEventPicture(r.Context(), eventID, req.Picture)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

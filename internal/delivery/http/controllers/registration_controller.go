package controllers

import (
	"log/slog"
	"net/http"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/delivery/http/middleware"
	"eventbooking/internal/domain"
)

// ReservationSuccessResponse is the success response envelope for register and unregister.
type ReservationSuccessResponse struct {
	Data  *domain.ReservationResult `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// UserEventsSuccessResponse is the success response envelope for GET /users/{userID}/events.
type UserEventsSuccessResponse struct {
	Data  []*domain.RegistrationWithEvent `json:"data"`
	Error *helpers.APIError               `json:"error"`
}

// RegistrationController handles the caller's registrations on events.
type RegistrationController struct {
	Logger       *slog.Logger
	Queries      domain.EventQueryService
	Reservations domain.ReservationService
}

func NewRegistrationController(logger *slog.Logger, queries domain.EventQueryService, reservations domain.ReservationService) *RegistrationController {
	return &RegistrationController{
		Logger:       logger,
		Queries:      queries,
		Reservations: reservations,
	}
}

// Register godoc
// @Summary Register on an event
// @Description Reserves one place on the event for the authenticated user.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 201 {object} controllers.ReservationSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: event_not_found | user_not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: no_places_left | capacity_exceeded | duplicate_registration"
// @Failure 503 {object} helpers.APIResponse "error.code: transient"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registrations [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	eventID, userID, ok := c.pathAndCaller(w, r)
	if !ok {
		return
	}
	res, err := c.Reservations.RegisterUserOnEvent(r.Context(), userID, eventID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, res)
}

// Unregister godoc
// @Summary Unregister from an event
// @Description Releases the authenticated user's place on the event.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.ReservationSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: event_not_found | user_not_found | registration_not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: transient"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registrations [delete]
func (c *RegistrationController) Unregister(w http.ResponseWriter, r *http.Request) {
	eventID, userID, ok := c.pathAndCaller(w, r)
	if !ok {
		return
	}
	res, err := c.Reservations.UnregisterUserOnEvent(r.Context(), userID, eventID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

func (c *RegistrationController) pathAndCaller(w http.ResponseWriter, r *http.Request) (eventID, userID string, ok bool) {
	eventID = r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return "", "", false
	}
	userID, ok = middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return "", "", false
	}
	return eventID, userID, true
}

// ListUserEvents godoc
// @Summary List a user's registrations
// @Description Returns the user's registrations, newest first, each with its event. Callers may list their own registrations; admins may list anyone's.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} controllers.UserEventsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userID}/events [get]
func (c *RegistrationController) ListUserEvents(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	if userID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing userID")
		return
	}
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if p.UserID != userID && !p.HasRole(domain.RoleAdmin) {
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
		return
	}
	items, err := c.Queries.ListUserEvents(r.Context(), userID)
	if err != nil {
		helpers.WriteDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, items)
}

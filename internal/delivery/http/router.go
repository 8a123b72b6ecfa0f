package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventbooking/internal/delivery/http/controllers"
	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/delivery/http/middleware"
	"eventbooking/internal/domain"
)

// RouterDeps groups what NewRouter needs to mount every route.
type RouterDeps struct {
	Logger       *slog.Logger
	Verifier     domain.TokenVerifier
	Events       *controllers.EventController
	Registration *controllers.RegistrationController
	CORSOrigins  []string
}

// NewRouter initializes the HTTP router with all application routes,
// wrapped in CORS and request logging.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	auth := middleware.RequireAuth(d.Verifier, d.Logger)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	admin := func(next http.HandlerFunc) http.HandlerFunc { return auth(adminOnly(next)) }

	// Events (read, any signed-in user)
	mux.HandleFunc("GET /events", auth(d.Events.ListEvents))
	mux.HandleFunc("GET /events/filter", auth(d.Events.FilterEvents))
	mux.HandleFunc("GET /events/by-name/{name}", auth(d.Events.GetEventByName))
	mux.HandleFunc("GET /events/{eventID}", auth(d.Events.GetEventByID))

	// Events (admin)
	mux.HandleFunc("POST /events", admin(d.Events.CreateEvent))
	mux.HandleFunc("PUT /events/{eventID}", admin(d.Events.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", admin(d.Events.DeleteEvent))
	mux.HandleFunc("PUT /events/{eventID}/picture", admin(d.Events.SetEventPicture))

	// Registrations
	mux.HandleFunc("POST /events/{eventID}/registrations", auth(d.Registration.Register))
	mux.HandleFunc("DELETE /events/{eventID}/registrations", auth(d.Registration.Unregister))
	mux.HandleFunc("GET /users/{userID}/events", auth(d.Registration.ListUserEvents))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return middleware.CORS(d.CORSOrigins, middleware.LoggingMiddleware(d.Logger, mux))
}

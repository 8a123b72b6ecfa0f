package helpers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventbooking/internal/domain"
)

// WriteDomainError maps err onto a status code and a stable error code.
// Unexpected errors are logged and reported as internal_error without details.
func WriteDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var (
		verr *domain.ValidationError
		nf   *domain.NotFoundError
	)
	switch {
	case errors.As(err, &verr):
		WriteValidationError(w, verr)
	case errors.As(err, &nf):
		WriteJSONError(w, http.StatusNotFound, notFoundCode(nf.Kind), nf.Error())
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrNoPlacesLeft):
		WriteJSONError(w, http.StatusConflict, ErrCodeNoPlacesLeft, "no places left")
	case errors.Is(err, domain.ErrCapacityExceeded):
		WriteJSONError(w, http.StatusConflict, ErrCodeCapacityExceeded, err.Error())
	case errors.Is(err, domain.ErrDuplicateRegistration):
		WriteJSONError(w, http.StatusConflict, ErrCodeDuplicateRegistration, "user is already registered on this event")
	case errors.Is(err, domain.ErrUnauthorized):
		WriteJSONError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		WriteJSONError(w, http.StatusForbidden, ErrCodeForbidden, "forbidden")
	case errors.Is(err, domain.ErrTransient), errors.Is(err, context.DeadlineExceeded):
		logger.WarnContext(r.Context(), "transient failure", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusServiceUnavailable, ErrCodeTransient, "temporarily unavailable, retry later")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}

func notFoundCode(kind string) string {
	switch kind {
	case domain.KindEvent:
		return ErrCodeEventNotFound
	case domain.KindUser:
		return ErrCodeUserNotFound
	case domain.KindRegistration:
		return ErrCodeRegistrationNotFound
	default:
		return ErrCodeNotFound
	}
}

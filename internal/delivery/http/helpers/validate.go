package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"eventbooking/internal/domain"
)

// StructValidator checks a decoded request DTO.
type StructValidator interface {
	Validate(ctx context.Context, s any) error
}

// DecodeAndValidate decodes the request body into dest (with DisallowUnknownFields)
// and runs v against it. On decode or validation failure it writes a 400 JSON error
// and returns false; otherwise returns true.
// Callers should return immediately when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any, v StructValidator) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return false
	}
	if v == nil {
		return true
	}
	if err := v.Validate(r.Context(), dest); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			WriteValidationError(w, verr)
		} else {
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		}
		return false
	}
	return true
}

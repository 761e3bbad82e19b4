package handler

import (
	"encoding/json"
	"net/http"

	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/middleware"
	"github.com/teberizm/nfc-bracelet-ecommerce-sub001/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeServiceError maps a service error to an HTTP response. DomainError
// codes carry their own status; anything else is a generic 500.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	if derr, ok := err.(*model.DomainError); ok {
		writeJSON(w, statusForCode(derr.Code), model.ErrorResponse{
			Error:   derr.Code,
			Message: derr.Message,
		})
		logger.Warn().Str("code", derr.Code).Str("message", derr.Message).Msg("domain error")
		return
	}

	logger.Error().Err(err).Msg("internal error")
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		Error:   model.ErrCodeInternalError,
		Message: "Something went wrong",
	})
}

// statusForCode maps a domain error code to an HTTP status.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeInvalidCredential, model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeForbidden:
		return http.StatusForbidden
	case model.ErrCodeProductNotFound,
		model.ErrCodeOrderNotFound,
		model.ErrCodeThemeNotFound,
		model.ErrCodeContentNotFound,
		model.ErrCodeMediaNotFound,
		model.ErrCodeUserNotFound:
		return http.StatusNotFound
	case model.ErrCodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// subjectID extracts the authenticated account ID from the request context.
func subjectID(r *http.Request) (uuid.UUID, bool) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		return uuid.Nil, false
	}
	id, err := claims.SubjectID()
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses the UUID path segment following the given route prefix.
func pathID(r *http.Request, prefix string) (uuid.UUID, bool) {
	if len(r.URL.Path) <= len(prefix) {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(r.URL.Path[len(prefix):])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

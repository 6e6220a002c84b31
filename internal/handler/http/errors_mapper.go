package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-service/internal/crypto"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/utils"
)

var kindStatusMap = map[service.Kind]int{
	service.KindValidation:     http.StatusBadRequest,
	service.KindConflict:       http.StatusBadRequest,
	service.KindAuthentication: http.StatusBadRequest,
	service.KindNotFound:       http.StatusNotFound,
}

// errorStatusMap covers errors raised by the transport itself.
var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	crypto.ErrTokenIsExpired:      http.StatusUnauthorized,
	crypto.ErrTokenIsInvalid:      http.StatusUnauthorized,
}

func statusFromError(err error) int {
	if status, ok := kindStatusMap[service.KindOf(err)]; ok {
		return status
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and writes it as a {"message": ...} body. Server-side
// failures are reported with a generic message only.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	message := err.Error()
	if status >= http.StatusInternalServerError || service.KindOf(err) != service.KindInternal {
		message = service.Message(err)
	}

	utils.WriteError(w, message, status)
}

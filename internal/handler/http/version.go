package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-auth-service/internal/logger"
)

// getServerVersion answers GET /api/version with the plain version string.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, version); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}

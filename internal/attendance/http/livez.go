package http

import (
	"net/http"
	"time"

	"github.com/andeanops/rollcall/pkg/httpx"
	"github.com/andeanops/rollcall/pkg/rollsdk"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe returning basic service health status, uptime, and version.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	rollsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, rollsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

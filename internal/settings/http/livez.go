package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/partsdash/pkg/httpx"
	"github.com/aussiebroadwan/partsdash/pkg/settingssdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Always returns 200 while the process is serving requests
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	settingssdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, settingssdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

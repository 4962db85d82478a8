package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/partsdash/pkg/httpx"
	"github.com/aussiebroadwan/partsdash/pkg/settingssdk"
)

// Pinger is satisfied by store.Store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Reports whether the settings database is reachable
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	settingssdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	settingssdk.HealthResponse	"database unreachable"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &settingssdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := db.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, settingssdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/devflix-admin/internal/platform/telemetry"
)

// Stack returns the inbound middleware in the order the router installs
// them, outermost first. Recovery wraps everything so a panic anywhere in
// the chain still yields a problem response; Timeout sits innermost so the
// deadline only bounds handler work.
//
// A nil metrics value disables request metrics but keeps tracing.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		AppContext(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(timeout),
	}
}

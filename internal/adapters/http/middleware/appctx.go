package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/devflix-admin/internal/app/context"
)

// AppContext returns middleware that installs a fresh RequestContext for
// each HTTP request. Category repositories stage their writes on it and the
// unit of work commits them, so every request gets its own isolated batch.
// Writes left uncommitted when the handler returns are dropped.
//
// Register it after CorrelationID so the wrapped context carries the
// request and correlation IDs.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			ctx := appctx.WithRequestContext(r.Context(), rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

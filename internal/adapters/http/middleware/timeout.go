package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/devflix-admin/internal/adapters/http/dto"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/logging"
)

// Timeout returns middleware that bounds each request by timeout. The
// handler sees the deadline on its context, so a slow Postgres commit or
// Redis call is canceled with it. When the deadline wins, a 504 problem
// response is written and anything the handler writes afterwards is dropped
// with http.ErrHandlerTimeout.
//
// The handler runs in its own goroutine and writes into a buffer; the
// buffer reaches the client only if the handler finishes first. A panic in
// that goroutine is re-raised on the serving goroutine so Recovery sees it.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			bw := &bufferedWriter{}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.copyTo(w)
			case <-ctx.Done():
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.timedOut = true

				logging.FromContext(r.Context()).WarnContext(r.Context(), "request timed out",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Duration("timeout", timeout),
				)
				dto.WriteProblem(w, r, http.StatusGatewayTimeout,
					fmt.Sprintf("request did not complete within %s", timeout))
			}
		})
	}
}

// bufferedWriter holds the handler's response until Timeout decides whether
// it is sent. Its mutex is shared between the handler goroutine and the
// deadline path.
type bufferedWriter struct {
	mu          sync.Mutex
	header      http.Header
	body        []byte
	statusCode  int
	wroteHeader bool
	timedOut    bool
}

func (bw *bufferedWriter) Header() http.Header {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.header == nil {
		bw.header = make(http.Header)
	}
	return bw.header
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !bw.wroteHeader {
		bw.statusCode = http.StatusOK
		bw.wroteHeader = true
	}
	bw.body = append(bw.body, b...)
	return len(b), nil
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.timedOut || bw.wroteHeader {
		return
	}
	bw.statusCode = code
	bw.wroteHeader = true
}

// copyTo sends the buffered response. Must be called with bw.mu held.
func (bw *bufferedWriter) copyTo(w http.ResponseWriter) {
	if bw.header != nil {
		maps.Copy(w.Header(), bw.header)
	}
	if bw.wroteHeader {
		w.WriteHeader(bw.statusCode)
	}
	if len(bw.body) > 0 {
		_, _ = w.Write(bw.body)
	}
}

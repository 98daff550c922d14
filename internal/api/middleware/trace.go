package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/platform/logger"
)

// RequestRecorder receives one observation per completed request.
// *metrics.HTTPMetrics satisfies it.
type RequestRecorder interface {
	ObserveRequest(method, path string, status int, duration time.Duration)
}

// NewTraceMiddleware returns middleware that gives every request a trace ID,
// logs its start and completion, and records its status and duration.
//
// Per request, in order: assign the trace ID, take the start time, log
// "Request started", run next, then record the counter and histogram and log
// the completion line. The completion side also runs when next panics, with
// status 500, before the panic continues up the stack. Mount it before
// chi's Recoverer so recovered panics are recorded as 500s.
func NewTraceMiddleware(recorder RequestRecorder, log *slog.Logger) func(http.Handler) http.Handler {
	if recorder == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("recorder cannot be nil for TraceMiddleware")
	}
	if log == nil {
		log = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)
			method, path := r.Method, r.URL.Path

			start := time.Now()

			reqLog := log.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, reqLog)

			reqLog.Info(fmt.Sprintf("%s %s %s - Request started", traceID, method, path),
				slog.String("method", method),
				slog.String("path", path))

			w.Header().Set(shared.TraceIDHeader, traceID)
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			finish := func(status int) {
				duration := time.Since(start)
				recorder.ObserveRequest(method, path, status, duration)
				reqLog.Info(
					fmt.Sprintf("%s %s %s - Status: %d - Duration: %.3fs",
						traceID, method, path, status, duration.Seconds()),
					slog.String("method", method),
					slog.String("path", path),
					slog.Int("status", status),
					slog.Float64("duration", duration.Seconds()))
			}

			defer func() {
				if p := recover(); p != nil {
					finish(http.StatusInternalServerError)
					panic(p)
				}
				status := ww.Status()
				if status == 0 {
					// Handler wrote nothing; net/http sends 200.
					status = http.StatusOK
				}
				finish(status)
			}()

			next.ServeHTTP(ww, r.WithContext(ctx))
		})
	}
}

package main

import (
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/mvptracker/internal/auth"
	"github.com/mmynk/mvptracker/internal/config"
	"github.com/mmynk/mvptracker/internal/metrics"
	"github.com/mmynk/mvptracker/internal/middleware"
	"github.com/mmynk/mvptracker/internal/service"
	"github.com/mmynk/mvptracker/internal/tracker"
	"github.com/mmynk/mvptracker/pkg/api"
)

// newHandler wires the RPC service, health and metrics routes.
func newHandler(t *tracker.Tracker, jwtManager *auth.JWTManager, m *metrics.Metrics, rsvp config.RSVPConfig, logger *slog.Logger) http.Handler {
	limiter := middleware.NewRateLimiter(rsvp.RatePerMinute, rsvp.Burst, logger, api.SubmitRSVPProcedure)
	limiter.OnThrottle = func(string) { m.ObserveRedemption("throttled") }

	// Authenticate runs first so the others see the caller identity.
	svc := service.NewTrackerService(t, jwtManager, m, logger)
	rpcPath, rpcHandler := api.NewTrackerServiceHandler(svc, connect.WithInterceptors(
		middleware.Authenticate(jwtManager),
		middleware.LoggingInterceptor(logger),
		middleware.MetricsInterceptor(m),
		limiter.Interceptor(),
	))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(logger))
	r.Use(corsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Handle(rpcPath+"*", rpcHandler)

	// Wrap with h2c for HTTP/2 without TLS
	return h2c.NewHandler(r, &http2.Server{})
}

// requestLogger logs every HTTP request at debug level; RPC outcomes are
// logged by the interceptor.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("Request completed",
				"request_id", chimw.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms, "+api.ErrorKindHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

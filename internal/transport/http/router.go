// Package httptransport wires handlers and middleware into the public router.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	inquiryhandler "vetgate/internal/inquiry/handler"
	"vetgate/internal/platform/health"
	"vetgate/internal/platform/middleware"
)

// NewRouter wires all public endpoints with the standard middleware stack.
// The transport layer stays thin: handlers delegate to domain services and
// never embed business logic.
func NewRouter(inquiries *inquiryhandler.Handler, healthHandler *health.Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)

	inquiries.Register(r)
	healthHandler.Register(r)

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

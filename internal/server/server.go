// Package server maps the finance and auth services onto HTTP routes
// and translates service outcomes into status codes and JSON bodies.
package server

import (
	"net/http"

	"github.com/adisurya/fintrack/internal/auth"
	"github.com/adisurya/fintrack/internal/middleware"
	"github.com/adisurya/fintrack/internal/service"
)

// Server wires the application services to the HTTP surface.
type Server struct {
	finances *service.FinanceService
	auth     *service.AuthService
	jwt      *auth.JWTManager
	metrics  http.Handler
}

// New creates a Server over the given services. metricsHandler is the
// Prometheus exposition endpoint; nil disables the /metrics route.
func New(finances *service.FinanceService, authSvc *service.AuthService, jwt *auth.JWTManager, metricsHandler http.Handler) *Server {
	return &Server{
		finances: finances,
		auth:     authSvc,
		jwt:      jwt,
		metrics:  metricsHandler,
	}
}

// Handler builds the route table. Every finance route sits behind the
// JWT middleware; auth routes and the health check are public. Outer
// middleware (logging, metrics, CORS, recovery) is applied last-to-first
// so the first element wraps outermost.
func (s *Server) Handler(outer ...func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(s.jwt)
	protected := func(h http.HandlerFunc) http.Handler {
		return requireAuth(h)
	}

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.Handle("GET /api/auth/me", protected(s.handleCurrentUser))

	mux.Handle("GET /api/finances", protected(s.handleList))
	mux.Handle("POST /api/finances", protected(s.handleCreate))
	mux.Handle("PUT /api/finances/{id}", protected(s.handleUpdate))
	mux.Handle("DELETE /api/finances/{id}", protected(s.handleDelete))
	mux.Handle("GET /api/finances/summary", protected(s.handleSummary))
	mux.Handle("GET /api/finances/filter", protected(s.handleFilter))
	mux.Handle("GET /api/finances/category-stats", protected(s.handleCategoryStats))
	mux.Handle("GET /api/finances/monthly-stats", protected(s.handleMonthlyStats))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics)
	}

	var h http.Handler = mux
	for i := len(outer) - 1; i >= 0; i-- {
		h = outer[i](h)
	}
	return h
}

package main

import (
	"net/http"

	"github.com/condoportal/backend/internal/config"
	"github.com/condoportal/backend/internal/handler"
	"github.com/condoportal/backend/internal/metrics"
	"github.com/condoportal/backend/internal/service"
)

// services groups the business services the router exposes.
type services struct {
	contact     service.ContactService
	maintenance service.MaintenanceService
}

// newRouter builds the full middleware chain and route table. The returned
// cleanup func releases background resources held by middleware.
func newRouter(cfg *config.Config, svcs services) (http.Handler, func()) {
	h := handler.New(svcs.maintenance, cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(svcs.contact)
	maintenanceHandler := handler.NewMaintenanceHandler(svcs.maintenance)

	cleanup := func() {}
	limit := func(next http.HandlerFunc) http.Handler { return next }
	if cfg.RateLimitPerMinute > 0 {
		rl := handler.NewRateLimiter(cfg.RateLimitPerMinute, cfg.TrustedProxies)
		cleanup = rl.Close
		limit = func(next http.HandlerFunc) http.Handler { return rl.Middleware(next) }
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)

	mux.HandleFunc("GET /api/contact", contactHandler.Categories)
	mux.Handle("POST /api/contact", limit(contactHandler.Submit))
	mux.HandleFunc("/api/contact", contactHandler.MethodNotAllowed)

	mux.HandleFunc("GET /api/maintenance", maintenanceHandler.List)
	mux.Handle("POST /api/maintenance", limit(maintenanceHandler.Create))
	mux.HandleFunc("/api/maintenance", maintenanceHandler.MethodNotAllowed)

	if cfg.MetricsEnabled {
		mux.Handle("GET /metrics", metrics.Handler())
	}

	var root http.Handler = h.CORS(mux)
	root = handler.SecurityHeaders(root)
	if cfg.MetricsEnabled {
		root = metrics.PrometheusMiddleware(root)
	}
	root = handler.RequestLogger(root)
	root = handler.RequestID(root)
	return root, cleanup
}

package http

import (
	"net/http"

	"bookshelf/internal/book"
	"bookshelf/internal/config"
	"bookshelf/internal/httpx"
)

// NewHandler wraps the router in the middleware stack described by cfg.
// The returned stop func releases background resources.
func NewHandler(catalog book.Catalog, cfg *config.Config) (http.Handler, func()) {
	middlewares := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.HTTP.EnableHSTS),
		httpx.CORSMiddleware(cfg.HTTP.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.HTTP.MaxBodyBytes),
	}

	stop := func() {}
	if cfg.RateLimit.RPS > 0 {
		limiter := httpx.NewRateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		middlewares = append(middlewares, limiter.Middleware)
		stop = limiter.Stop
	}

	return httpx.Chain(NewRouter(catalog), middlewares...), stop
}

// NewServer builds the http.Server for cfg.
func NewServer(handler http.Handler, cfg *config.Config) *http.Server {
	return &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
}

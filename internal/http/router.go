// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, compression, and rate limiting.
//
// Observability comes first in the chain (OTel, then correlation and
// logging), and every dependency is injected rather than constructed here.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/superfood/go-food-backend/internal/config"
	"github.com/superfood/go-food-backend/internal/http/handlers"
	"github.com/superfood/go-food-backend/internal/http/middleware"
	"github.com/superfood/go-food-backend/internal/services"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting,
// CORS and security headers, compression, the liveness endpoints, and the
// public API under /api.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter (per client IP)
//  8. CORS, security headers, gzip
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) tracing
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) correlation id, 3) access logs, 4) panic recovery
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())

	// 5) request body cap, 1 MiB
	r.Use(limitBody(1 << 20))

	// 6) Prometheus instrumentation and scrape endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) per-IP token buckets
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByClientIP())
	r.Use(rl.Handler())

	// 8) CORS: the web shop is served from an arbitrary origin, so every
	// origin, method, and header is permitted.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
		AllowCredentials: false, // must remain false with AllowAllOrigins
		MaxAge:           12 * time.Hour,
	}))

	// Hardening headers; HSTS stays off unless enabled and on HTTPS
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Compress JSON responses (menu listings benefit the most)
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// Unknown routes and wrong methods get the standard envelope
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← repo/db
	userSvc := services.NewUserService(db, services.DefaultUserRepo())
	orderSvc := services.NewOrderService(db, services.DefaultOrderRepo(), userSvc)
	menuSvc := services.NewMenuService(db)
	h := handlers.New(menuSvc, orderSvc, userSvc)

	// Liveness envelope kept for compatibility with existing clients.
	r.GET("/", h.Hello)

	// Public API
	api := r.Group("/api")
	{
		api.GET("/items", h.ListItems)
		api.POST("/add_order", h.AddOrder)
		api.PATCH("/update_user_info", h.UpdateUserInfo)
		api.DELETE("/delete_user/:tg_id", h.DeleteUser)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

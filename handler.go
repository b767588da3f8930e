package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/cors"

	"lg/totalfit-api/internal/observability"
)

const requestIDHeader = "X-Request-ID"

// Handler holds shared, read-only settings for all route handlers.
type Handler struct {
	metricsEnabled bool
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

/* ─── Middleware ──────────────────────────────────────────────────────── */

// requestIDMiddleware reuses the caller's X-Request-ID or generates one, and
// echoes it on the response.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// healthz reports a simple OK status for container health checks.
func healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	router.GET("/healthz", healthz)
	if h.metricsEnabled {
		router.GET("/metrics", gin.WrapH(observability.Handler()))
	}

	api := router.Group("/api")
	api.POST("/calculate", h.calculate)
	api.GET("/options", h.getOptions)
}

// newRouter builds the gin engine with middleware and routes.
func newRouter(cfg config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), requestIDMiddleware())
	router.SetTrustedProxies(cfg.TrustedProxies)

	h := &Handler{metricsEnabled: cfg.MetricsEnabled}
	h.registerRoutes(router)
	return router
}

// newServer wraps the router in CORS handling for browser clients.
func newServer(cfg config) *http.Server {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{requestIDHeader},
	})

	return &http.Server{
		Addr:         cfg.HTTPAddress,
		Handler:      c.Handler(newRouter(cfg)),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

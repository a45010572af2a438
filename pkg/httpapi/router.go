// Package httpapi serves word predictions over HTTP.
//
// It exposes the same completion rules as the msgpack server under /api/v1:
//
//	GET  /api/v1/complete?p=ca&l=5
//	POST /api/v1/complete   {"prefix": "ca", "limit": 5}
//	GET  /api/v1/info
//	GET  /api/v1/health
package httpapi

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/bastiangx/typeahead/internal/logger"
	"github.com/bastiangx/typeahead/pkg/config"
	"github.com/bastiangx/typeahead/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request ID, echoed or generated.
const RequestIDHeader = "X-Request-ID"

// SetupRouter builds the gin engine for the given completer.
func SetupRouter(completer suggest.ICompleter, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	l := logger.New("http")
	h := NewHandler(completer, cfg, l)

	router := gin.New()
	router.Use(RecoveryMiddleware(l))
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(l))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/complete", h.CompleteQuery)
		v1.POST("/complete", h.CompleteJSON)
		v1.GET("/info", h.Info)
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "healthy",
			})
		})
	}

	return router
}

// RequestIDMiddleware keeps a client supplied X-Request-ID or assigns a new one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// LoggerMiddleware logs each request at debug level once it is served.
func LoggerMiddleware(l *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString("request_id"),
			"took", time.Since(start),
		)
	}
}

// RecoveryMiddleware turns a handler panic into a 500 JSON reply.
func RecoveryMiddleware(l *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				l.Error("Panic recovered",
					"error", err,
					"stack", string(debug.Stack()),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

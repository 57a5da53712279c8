// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file covers the request-correlation and logging chain:
//
//   - RequestID() tags every request with a correlation ID, reusing the
//     client-supplied X-Request-ID when present.
//   - Logger() writes one structured access-log line per request and stashes
//     a request-scoped zerolog.Logger in the Gin context for handlers.
//   - Recovery() turns panics into a JSON 500 that still carries the
//     correlation ID.
//   - LoggerFrom() fetches the request-scoped logger back out.
//
// Compose as RequestID() → Logger() → Recovery() so panics and errors are
// logged with the correlation ID attached.
package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	ctxKeyRequestID = "requestID"
	ctxKeyLogger    = "logger"
	headerRequestID = "X-Request-ID"

	// queryLogCap bounds how much of the raw query string ends up in logs.
	queryLogCap = 2048
)

// RequestID reuses an incoming X-Request-ID or mints a UUIDv4, stores the
// value in the Gin context, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, id)
		c.Writer.Header().Set(headerRequestID, id)
		c.Next()
	}
}

// Logger emits a structured access log per request. The line carries the
// correlation ID, method, route, client address, sizes, status, and latency.
// Level tracks the outcome: 5xx (or collected Gin errors) log at error, 4xx
// at warn, everything else at info. A request-scoped logger with the same
// base fields is placed in the context for downstream use.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path // unmatched route, log the raw path
		}
		query := c.Request.URL.RawQuery
		if len(query) > queryLogCap {
			query = query[:queryLogCap]
		}

		scoped := log.With().
			Str("request_id", c.GetString(ctxKeyRequestID)).
			Str("method", c.Request.Method).
			Str("path", route).
			Str("remote_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Str("query", query).
			Int64("bytes_in", c.Request.ContentLength).
			Logger()
		c.Set(ctxKeyLogger, &scoped)

		c.Next()

		status := c.Writer.Status()
		line := scoped.With().
			Int("status", status).
			Dur("latency", time.Since(began)).
			Int("bytes_out", c.Writer.Size()).
			Logger()

		switch {
		case len(c.Errors) > 0:
			line.Error().Str("errors", c.Errors.String()).Msg("request")
		case status >= http.StatusInternalServerError:
			line.Error().Msg("request")
		case status >= http.StatusBadRequest:
			line.Warn().Msg("request")
		default:
			line.Info().Msg("request")
		}
	}
}

// Recovery catches panics, logs the stack, and answers a JSON 500 carrying
// the correlation ID. When the response was already partially written only
// the status can be set.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			rid := c.GetString(ctxKeyRequestID)
			log.Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("request_id", rid).
				Msg("panic recovered")

			if c.Writer.Written() {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.Header("Content-Type", "application/json")
			c.Header(headerRequestID, rid)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"request_id": rid,
				"code":       "internal_error",
				"message":    "internal server error",
			})
		}()
		c.Next()
	}
}

// LoggerFrom returns the request-scoped logger attached by Logger(), or the
// global logger when none was attached. The result is never nil.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(ctxKeyLogger); ok {
		if lg, ok := v.(*zerolog.Logger); ok {
			return lg
		}
	}
	lg := log.With().Logger()
	return &lg
}

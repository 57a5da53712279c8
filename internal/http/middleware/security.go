// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file adds conservative security headers for a JSON API behind a
// reverse proxy. No CSP is emitted since nothing here serves HTML; HSTS is
// opt-in and only attached when the request actually travelled over HTTPS.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// SecurityOptions configures SecurityHeaders. EnableHSTS should only be set
// when traffic is HTTPS end to end, proxy hop included; HSTSMaxAge falls
// back to 180 days when zero. NoStore marks responses uncacheable.
// EnablePolicy adds the browser feature-policy headers, harmless for
// non-browser clients.
type SecurityOptions struct {
	EnableHSTS   bool
	HSTSMaxAge   time.Duration
	NoStore      bool
	EnablePolicy bool
}

// SecurityHeaders attaches the header set on every response: nosniff, frame
// denial, and no-referrer always; the rest per SecurityOptions. When a
// request ID header is present it is appended to
// Access-Control-Expose-Headers so browser clients can read it.
func SecurityHeaders(opt SecurityOptions) gin.HandlerFunc {
	hstsSeconds := int(opt.HSTSMaxAge.Seconds())
	if hstsSeconds <= 0 {
		hstsSeconds = int((180 * 24 * time.Hour).Seconds())
	}
	hstsValue := "max-age=" + strconv.Itoa(hstsSeconds) + "; includeSubDomains; preload"

	return func(c *gin.Context) {
		hdr := c.Writer.Header()

		hdr.Set("X-Content-Type-Options", "nosniff")
		hdr.Set("X-Frame-Options", "DENY")
		hdr.Set("Referrer-Policy", "no-referrer")

		if opt.EnablePolicy {
			hdr.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=(), payment=()")
			hdr.Set("X-Permitted-Cross-Domain-Policies", "none")
		}
		if opt.NoStore {
			hdr.Set("Cache-Control", "no-store")
			hdr.Set("Pragma", "no-cache")
			hdr.Set("Expires", "0")
		}
		if opt.EnableHSTS && viaHTTPS(c.Request) {
			hdr.Set("Strict-Transport-Security", hstsValue)
		}

		if rid := hdr.Get(headerRequestID); rid != "" {
			const expose = "Access-Control-Expose-Headers"
			switch cur := hdr.Get(expose); {
			case cur == "":
				hdr.Set(expose, headerRequestID)
			case !strings.Contains(cur, headerRequestID):
				hdr.Set(expose, cur+", "+headerRequestID)
			}
		}

		c.Next()
	}
}

// viaHTTPS reports whether the request arrived over TLS, either directly or
// through a proxy that set X-Forwarded-Proto.
func viaHTTPS(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

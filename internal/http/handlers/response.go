// Package handlers provides the HTTP handlers for the public API.
//
// This file defines the response conventions shared by every endpoint:
//
//   - Mutating endpoints answer with a StatusResponse envelope, "ok" on
//     success.
//   - Errors answer with an ErrorResponse carrying a stable machine-readable
//     code, a human-readable message, and the request's correlation ID.
//   - fail() is the single path for error responses; it logs 5xx outcomes
//     with the request-scoped logger.
//
// A success and an error response, side by side:
//
//	HTTP/1.1 200 OK
//	{ "status": "ok" }
//
//	HTTP/1.1 422 Unprocessable Entity
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "validation_failed",
//	  "message": "phone: must start with \"+\" followed by exactly 11 digits"
//	}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/superfood/go-food-backend/internal/http/middleware"
)

// StatusResponse is the envelope returned by mutating endpoints.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// StatusOK is the canonical success envelope.
var StatusOK = StatusResponse{Status: "ok"}

// StatusUserNotFound is the envelope returned when a delete targets an
// unknown user. The wording is part of the public contract.
var StatusUserNotFound = StatusResponse{Status: "not ok. The user was not found"}

// ErrorResponse is the error envelope returned by all endpoints. RequestID
// echoes X-Request-ID so client reports can be matched to server logs; Code
// is one of the stable constants in errors.go; Message is safe to show to
// users.
type ErrorResponse struct {
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	Code      string `json:"code" example:"not_found"`
	Message   string `json:"message" example:"resource not found"`
}

// fail aborts the request with an ErrorResponse at the given status. Server
// errors (>= 500) are also logged with the request-scoped logger.
func fail(c *gin.Context, status int, code, msg string) {
	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	})
}

// Fail exposes fail() to other packages (the router's NoRoute/NoMethod
// fallbacks) so every error body goes through the same envelope.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes a success JSON response with the given status code.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// Package services defines the business logic for users, orders, and the
// menu. This file centralizes common service-level error values so that they
// can be consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import "errors"

var (
	// ErrUserNotFound indicates that the requested Telegram identifier does
	// not match any stored user.
	ErrUserNotFound = errors.New("user not found")
)

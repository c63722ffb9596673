// Package common defines shared sentinel errors used across the back-office
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth errors.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrTokenExpired     = errors.New("token expired")

	// Gateway errors.
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")

	// Workflow flow-control errors.
	ErrBusy            = errors.New("operation already in progress")
	ErrInvalidState    = errors.New("action not allowed in current state")
	ErrNoActiveSession = errors.New("no active provisioning session")
)

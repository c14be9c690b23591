package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated = errors.New("session is not authenticated")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrSecretNotFound   = errors.New("secret not found")
)

// ConfigError reports invalid construction input, such as a session built
// with neither explicit credentials nor the admin service credential.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration: " + e.Reason
}

// AuthError reports a failed login or liveness check.
type AuthError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("auth %s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("auth %s: status %d: %s", e.Op, e.StatusCode, e.Body)
}

// RemoteError reports a non-2xx terminal status or timeout on a data call.
// It carries the request path and raw body; nothing at this layer retries.
type RemoteError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// SyncError marks a whole synchronization pass as failed. Dataset names the
// first dataset whose load failed; sibling results are discarded.
type SyncError struct {
	Dataset string
	Err     error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync dataset %s: %v", e.Dataset, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

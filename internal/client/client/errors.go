package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable: no response was received (network down, DNS, timeout).
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized: 401 on a call that cannot be recovered by refreshing,
	// e.g. a login with a wrong password.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrSessionExpired: the session is gone and the user must log in again.
	ErrSessionExpired = errors.New("session expired")

	ErrBadRequest    = errors.New("bad request")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("endpoint not found")
	ErrServer        = errors.New("server error")
	ErrRequestFailed = errors.New("request failed")
)

// StatusError is a failed exchange that produced no usable envelope. Kind is
// one of the sentinels above, so callers match it with errors.Is.
type StatusError struct {
	Kind    error
	Status  int
	Message string
	Cause   error
}

func (e *StatusError) Error() string {
	msg := e.Kind.Error()
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	} else if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *StatusError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// BusinessError is an application-level failure reported inside a 2xx
// envelope. It is never retried.
type BusinessError struct {
	Code    int
	Message string
}

func (e *BusinessError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("business error %d", e.Code)
	}
	return fmt.Sprintf("business error %d: %s", e.Code, e.Message)
}

func statusKind(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusInternalServerError:
		return ErrServer
	default:
		return ErrRequestFailed
	}
}

// UserMessage renders err as the short notification shown to the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var be *BusinessError
	if errors.As(err, &be) {
		if be.Message != "" {
			return be.Message
		}
		return "Operation failed"
	}

	switch {
	case errors.Is(err, ErrSessionExpired):
		return "Your session has expired, please log in again"
	case errors.Is(err, ErrUnauthorized):
		return "Invalid credentials or login required"
	case errors.Is(err, ErrBadRequest):
		return "Invalid request parameters"
	case errors.Is(err, ErrForbidden):
		return "You do not have permission to do this"
	case errors.Is(err, ErrNotFound):
		return "The requested endpoint does not exist"
	case errors.Is(err, ErrServer):
		return "Internal server error, please try again later"
	case errors.Is(err, ErrUnavailable):
		return "Network connection failed, please check that the server is running"
	}

	var se *StatusError
	if errors.As(err, &se) {
		if se.Message != "" {
			return se.Message
		}
		return fmt.Sprintf("Request failed (status %d)", se.Status)
	}
	return err.Error()
}

package client

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusError_MatchesKindAndCause(t *testing.T) {
	err := fmt.Errorf("list albums: %w", &StatusError{Kind: ErrUnavailable, Cause: context.DeadlineExceeded})

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, ErrServer)
}

func TestStatusError_Error(t *testing.T) {
	assert.Equal(t, "forbidden (status 403): admin only",
		(&StatusError{Kind: ErrForbidden, Status: 403, Message: "admin only"}).Error())
	assert.Equal(t, "server unavailable: boom",
		(&StatusError{Kind: ErrUnavailable, Cause: errors.New("boom")}).Error())
}

func TestStatusKind(t *testing.T) {
	assert.Equal(t, ErrBadRequest, statusKind(400))
	assert.Equal(t, ErrUnauthorized, statusKind(401))
	assert.Equal(t, ErrForbidden, statusKind(403))
	assert.Equal(t, ErrNotFound, statusKind(404))
	assert.Equal(t, ErrServer, statusKind(500))
	assert.Equal(t, ErrRequestFailed, statusKind(502))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"business", &BusinessError{Code: 1001, Message: "album not empty"}, "album not empty"},
		{"business no message", &BusinessError{Code: 1001}, "Operation failed"},
		{"expired", fmt.Errorf("%w: %w", ErrSessionExpired, &StatusError{Kind: ErrUnauthorized, Status: 401}), "Your session has expired, please log in again"},
		{"unauthorized", &StatusError{Kind: ErrUnauthorized, Status: 401}, "Invalid credentials or login required"},
		{"not found", &StatusError{Kind: ErrNotFound, Status: 404}, "The requested endpoint does not exist"},
		{"unavailable", &StatusError{Kind: ErrUnavailable, Cause: errors.New("dial tcp")}, "Network connection failed, please check that the server is running"},
		{"other status with message", &StatusError{Kind: ErrRequestFailed, Status: 502, Message: "bad gateway"}, "bad gateway"},
		{"other status", &StatusError{Kind: ErrRequestFailed, Status: 502}, "Request failed (status 502)"},
		{"plain", errors.New("x"), "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/lightgallery/internal/client/models"
)

var errNoToken = errors.New("refresh response carries no token")

// awaitRefresh returns a token to retry with after stale was rejected.
// Concurrent callers holding the same stale token share one refresh call;
// a caller whose ctx ends stops waiting but the shared refresh carries on.
func (c *HTTPClient) awaitRefresh(ctx context.Context, stale string) (string, error) {
	switch current := c.store.Token(ctx); {
	case current == "":
		return "", ErrSessionExpired
	case current != stale:
		// another wave already rotated the token
		return current, nil
	}

	ch := c.refreshes.DoChan(stale, func() (any, error) {
		return c.refresh(context.WithoutCancel(ctx), stale)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", &StatusError{Kind: ErrUnavailable, Cause: ctx.Err()}
	}
}

// refresh exchanges stale for a fresh token. It runs at most once per
// invalidation wave. On failure the store is cleared and the session
// terminated event is emitted, both only if stale is still current.
func (c *HTTPClient) refresh(ctx context.Context, stale string) (string, error) {
	if current := c.store.Token(ctx); current != stale {
		if current == "" {
			return "", ErrSessionExpired
		}
		return current, nil
	}

	c.log.Info(ctx, "access token rejected, refreshing")

	var res models.TokenResult
	err := c.Do(ctx, &Request{Method: http.MethodPost, Path: c.refreshPath, NoRefresh: true}, &res)
	if err == nil && res.Value() == "" {
		err = errNoToken
	}
	if err != nil {
		c.metrics.refresh(false)
		c.log.Warn(ctx, "token refresh failed", "error", err)
		c.terminate(ctx, stale, ReasonRefreshFailed, err)
		return "", fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}
	c.metrics.refresh(true)

	fresh := res.Value()
	if !c.store.Replace(ctx, stale, fresh) {
		// logout or a newer login won the race; the fresh token is dropped
		if current := c.store.Token(ctx); current != "" {
			return current, nil
		}
		return "", ErrSessionExpired
	}
	c.log.Info(ctx, "access token refreshed")
	return fresh, nil
}

// rejectRetry handles a 401 on a call that was already retried with a
// refreshed token.
func (c *HTTPClient) rejectRetry(ctx context.Context, token string, cause error) error {
	if c.terminate(ctx, token, ReasonRetryRejected, cause) {
		return fmt.Errorf("%w: %w", ErrSessionExpired, cause)
	}
	if c.store.Token(ctx) == "" {
		return fmt.Errorf("%w: %w", ErrSessionExpired, cause)
	}
	return cause
}

// terminate clears the store if it still holds token and, if this call did
// the clearing, announces the end of the session.
func (c *HTTPClient) terminate(ctx context.Context, token, reason string, cause error) bool {
	if !c.store.ClearIf(ctx, token) {
		return false
	}
	c.metrics.terminated()
	c.log.Warn(ctx, "session terminated", "reason", reason)
	c.events.emit(SessionEvent{Reason: reason, Err: cause, At: time.Now()})
	return true
}

// Refresh forces a token refresh outside of a failing call. It shares the
// in-flight refresh, if any.
func (c *HTTPClient) Refresh(ctx context.Context) (string, error) {
	stale := c.store.Token(ctx)
	if stale == "" {
		return "", ErrSessionExpired
	}
	return c.awaitRefresh(ctx, stale)
}

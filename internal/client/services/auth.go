// Package services contains application services for the light gallery
// client. This file defines the authentication service: login, register,
// logout and restoring a session left by a previous run.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lightgallery/internal/client/client"
	"github.com/dmitrijs2005/lightgallery/internal/client/models"
	"github.com/dmitrijs2005/lightgallery/internal/client/session"
	"github.com/dmitrijs2005/lightgallery/internal/common"
	"github.com/dmitrijs2005/lightgallery/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate, store the token (remembered across runs when
//     remember is set) and load the user record.
//   - Register: create a new account; does not log in.
//   - Logout: tell the server (best effort) and always clear local state.
//   - Restore: pick up a stored credential and verify it with the server.
//   - CurrentUser: the cached user record, nil when logged out.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte, remember bool) (*models.User, error)
	Register(ctx context.Context, username, email string, password []byte) error
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*models.User, error)
	CurrentUser() *models.User
}

type authService struct {
	client client.Client
	store  *session.Store
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// credential store.
func NewAuthService(c client.Client, store *session.Store, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Discard()
	}
	return &authService{client: c, store: store, log: log}
}

// Login wipes password once it has been sent.
func (a *authService) Login(ctx context.Context, username string, password []byte, remember bool) (*models.User, error) {
	res, err := a.client.Login(ctx, username, string(password))
	common.WipeByteArray(password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.store.Set(ctx, res.Token, res.User, remember); err != nil {
		// the in-memory session is usable; only remembering it failed
		a.log.Warn(ctx, "credential not saved", "error", err)
	}

	user, err := a.store.FetchCurrentUser(ctx, a.client)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	a.log.Info(ctx, "logged in", "user", user.Username, "remember", remember)
	return user, nil
}

func (a *authService) Register(ctx context.Context, username, email string, password []byte) error {
	_, err := a.client.Register(ctx, username, email, string(password))
	common.WipeByteArray(password)
	if err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

// Logout never fails because of the server: a remote error is logged and
// local state is cleared anyway. Only a storage error is returned.
func (a *authService) Logout(ctx context.Context) error {
	if a.store.IsAuthenticated(ctx) {
		if err := a.client.Logout(ctx); err != nil {
			a.log.Warn(ctx, "remote logout failed", "error", err)
		}
	}
	return a.store.Clear(ctx)
}

// Restore returns (nil, nil) when there is nothing to restore.
func (a *authService) Restore(ctx context.Context) (*models.User, error) {
	if err := a.store.Load(ctx); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if !a.store.IsAuthenticated(ctx) {
		return nil, nil
	}

	user, err := a.store.FetchCurrentUser(ctx, a.client)
	if err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			return nil, nil
		}
		return nil, fmt.Errorf("restore session: %w", err)
	}
	return user, nil
}

func (a *authService) CurrentUser() *models.User {
	return a.store.User()
}

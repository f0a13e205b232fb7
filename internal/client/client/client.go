package client

import (
	"context"

	"github.com/dmitrijs2005/lightgallery/internal/client/models"
)

// Client is the subset of the API the auth service depends on.
type Client interface {
	Login(ctx context.Context, username, password string) (*models.LoginResult, error)
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	UserInfo(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

var _ Client = (*HTTPClient)(nil)

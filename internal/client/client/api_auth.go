package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/lightgallery/internal/client/models"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// Login exchanges username and password for an access token. A 401 here
// means wrong credentials and is never refreshed.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.LoginResult, error) {
	var res models.LoginResult
	req := &Request{
		Method:    http.MethodPost,
		Path:      "/auth/login",
		Body:      credentialsRequest{Username: username, Password: password},
		NoRefresh: true,
	}
	if err := c.Do(ctx, req, &res); err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, &StatusError{Kind: ErrRequestFailed, Status: http.StatusOK, Message: errNoToken.Error()}
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	var u models.User
	req := &Request{
		Method:    http.MethodPost,
		Path:      "/auth/register",
		Body:      credentialsRequest{Username: username, Email: email, Password: password},
		NoRefresh: true,
	}
	if err := c.Do(ctx, req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UserInfo returns the record of the user the current token belongs to.
func (c *HTTPClient) UserInfo(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.Do(ctx, &Request{Method: http.MethodGet, Path: "/auth/info"}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: "/auth/logout", NoRefresh: true}, nil)
}

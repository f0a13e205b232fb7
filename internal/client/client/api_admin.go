package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/lightgallery/internal/client/models"
)

func (c *HTTPClient) ListUsers(ctx context.Context, page, pageSize int, keyword string) (*models.Page[models.User], error) {
	q := pageQuery(page, pageSize)
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	var res models.Page[models.User]
	if err := c.Do(ctx, &Request{Method: http.MethodGet, Path: "/admin/users", Query: q}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) UpdateUserRole(ctx context.Context, userID string, role models.Role) error {
	req := &Request{
		Method: http.MethodPut,
		Path:   "/admin/users/" + url.PathEscape(userID) + "/role",
		Body:   map[string]models.Role{"role": role},
	}
	return c.Do(ctx, req, nil)
}

func (c *HTTPClient) ToggleUserActive(ctx context.Context, userID string, active bool) error {
	req := &Request{
		Method: http.MethodPut,
		Path:   "/admin/users/" + url.PathEscape(userID) + "/active",
		Body:   map[string]bool{"is_active": active},
	}
	return c.Do(ctx, req, nil)
}

func (c *HTTPClient) SystemStats(ctx context.Context) (*models.SystemStats, error) {
	var st models.SystemStats
	if err := c.Do(ctx, &Request{Method: http.MethodGet, Path: "/admin/system/stats"}, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/lightgallery/internal/client/models"
)

func pageQuery(page, pageSize int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}
	return q
}

// ListAlbums returns one page of albums, optionally filtered by permission.
func (c *HTTPClient) ListAlbums(ctx context.Context, page, pageSize int, perm models.Permission) (*models.Page[models.Album], error) {
	q := pageQuery(page, pageSize)
	if perm != "" {
		q.Set("permission", string(perm))
	}
	var res models.Page[models.Album]
	if err := c.Do(ctx, &Request{Method: http.MethodGet, Path: "/albums", Query: q}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetAlbum fetches one album. password is only needed for PASSWORD albums.
func (c *HTTPClient) GetAlbum(ctx context.Context, id, password string) (*models.Album, error) {
	q := url.Values{}
	if password != "" {
		q.Set("password", password)
	}
	var a models.Album
	if err := c.Do(ctx, &Request{Method: http.MethodGet, Path: "/albums/" + url.PathEscape(id), Query: q}, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *HTTPClient) CreateAlbum(ctx context.Context, in models.AlbumInput) (*models.Album, error) {
	if in.Permission == "" {
		in.Permission = models.PermissionPublic
	}
	var a models.Album
	if err := c.Do(ctx, &Request{Method: http.MethodPost, Path: "/albums", Body: in}, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteAlbum moves an album to the recycle bin.
func (c *HTTPClient) DeleteAlbum(ctx context.Context, id string) error {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: "/albums/" + url.PathEscape(id)}, nil)
}

func (c *HTTPClient) VerifyAlbumPassword(ctx context.Context, id, password string) error {
	req := &Request{
		Method: http.MethodPost,
		Path:   "/albums/" + url.PathEscape(id) + "/verify-password",
		Body:   map[string]string{"password": password},
	}
	return c.Do(ctx, req, nil)
}

func (c *HTTPClient) ListRecycledAlbums(ctx context.Context, page, pageSize int) (*models.Page[models.Album], error) {
	var res models.Page[models.Album]
	req := &Request{Method: http.MethodGet, Path: "/albums/recycle", Query: pageQuery(page, pageSize)}
	if err := c.Do(ctx, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) RestoreAlbum(ctx context.Context, id string) error {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: "/albums/" + url.PathEscape(id) + "/restore"}, nil)
}

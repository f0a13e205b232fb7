package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/lightgallery/internal/client/models"
)

// FullTextSearch searches albums, images and posts. kind restricts the
// result type ("album", "image", "blog"); empty searches everything.
func (c *HTTPClient) FullTextSearch(ctx context.Context, keyword, kind string, page, pageSize int) (*models.Page[models.SearchHit], error) {
	q := pageQuery(page, pageSize)
	q.Set("keyword", keyword)
	if kind != "" {
		q.Set("type", kind)
	}
	var res models.Page[models.SearchHit]
	if err := c.Do(ctx, &Request{Method: http.MethodGet, Path: "/search/full-text", Query: q}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

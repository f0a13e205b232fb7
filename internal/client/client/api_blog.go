package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/lightgallery/internal/client/models"
)

// PostFilter narrows ListPosts. Zero values are left out of the query.
type PostFilter struct {
	Keyword string
	Sort    string
	Order   string
}

func (c *HTTPClient) ListPosts(ctx context.Context, page, pageSize int, f PostFilter) (*models.Page[models.BlogPost], error) {
	q := pageQuery(page, pageSize)
	if f.Keyword != "" {
		q.Set("keyword", f.Keyword)
	}
	if f.Sort != "" {
		q.Set("sort", f.Sort)
	}
	if f.Order != "" {
		q.Set("order", f.Order)
	}
	var res models.Page[models.BlogPost]
	if err := c.Do(ctx, &Request{Method: http.MethodGet, Path: "/blog/posts", Query: q}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) GetPost(ctx context.Context, id string) (*models.BlogPost, error) {
	var p models.BlogPost
	if err := c.Do(ctx, &Request{Method: http.MethodGet, Path: "/blog/posts/" + url.PathEscape(id)}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, in models.BlogPostInput) (*models.BlogPost, error) {
	if in.Tags == nil {
		in.Tags = []string{}
	}
	var p models.BlogPost
	if err := c.Do(ctx, &Request{Method: http.MethodPost, Path: "/blog/posts", Body: in}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) DeletePost(ctx context.Context, id string) error {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: "/blog/posts/" + url.PathEscape(id)}, nil)
}

func (c *HTTPClient) ListComments(ctx context.Context, postID string, page, pageSize int) (*models.Page[models.Comment], error) {
	var res models.Page[models.Comment]
	req := &Request{
		Method: http.MethodGet,
		Path:   "/blog/posts/" + url.PathEscape(postID) + "/comments",
		Query:  pageQuery(page, pageSize),
	}
	if err := c.Do(ctx, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateComment adds a comment to a post; parentID is empty for top-level
// comments.
func (c *HTTPClient) CreateComment(ctx context.Context, postID, content, parentID string) (*models.Comment, error) {
	body := struct {
		Content  string `json:"content"`
		ParentID string `json:"parent_id,omitempty"`
	}{content, parentID}

	var cm models.Comment
	req := &Request{Method: http.MethodPost, Path: "/blog/posts/" + url.PathEscape(postID) + "/comments", Body: body}
	if err := c.Do(ctx, req, &cm); err != nil {
		return nil, err
	}
	return &cm, nil
}

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lightgallery/internal/client/models"
)

// route answers every call with data and records the last request.
type route struct {
	method, path, query string
	body                map[string]any
}

func recordingBackend(t *testing.T, data any, last *route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*last = route{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery}
		if r.ContentLength > 0 {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&last.body))
		}
		writeEnvelope(w, http.StatusOK, 200, "ok", data)
	})
}

func TestLogin_ReturnsTokenAndUser(t *testing.T) {
	var last route
	data := map[string]any{"token": "T1", "user": map[string]string{"username": "ann", "role": "ADMIN"}}
	c := newTestClient(t, recordingBackend(t, data, &last), &memStore{})

	res, err := c.Login(context.Background(), "ann", "pw")
	require.NoError(t, err)
	assert.Equal(t, "T1", res.Token)
	assert.Equal(t, models.RoleAdmin, res.User.Role)
	assert.Equal(t, "/api/auth/login", last.path)
	assert.Equal(t, "ann", last.body["username"])
	assert.NotContains(t, last.body, "email")
}

func TestLogin_MissingTokenIsError(t *testing.T) {
	var last route
	c := newTestClient(t, recordingBackend(t, map[string]any{}, &last), &memStore{})

	_, err := c.Login(context.Background(), "ann", "pw")
	require.ErrorIs(t, err, ErrRequestFailed)
}

func TestLogin_WrongPasswordIsUnauthorized(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, 401, "invalid username or password", nil)
	})
	c := newTestClient(t, h, &memStore{token: "OLD"})

	_, err := c.Login(context.Background(), "ann", "bad")
	require.ErrorIs(t, err, ErrUnauthorized)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "invalid username or password", se.Message)
}

func TestAPIWrappers_Routes(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		call   func(c *HTTPClient) error
		method string
		path   string
		query  string
	}{
		{"list albums", func(c *HTTPClient) error {
			_, err := c.ListAlbums(ctx, 1, 10, models.PermissionPublic)
			return err
		}, http.MethodGet, "/api/albums", "page=1&page_size=10&permission=PUBLIC"},
		{"get album", func(c *HTTPClient) error {
			_, err := c.GetAlbum(ctx, "a1", "pw")
			return err
		}, http.MethodGet, "/api/albums/a1", "password=pw"},
		{"delete album", func(c *HTTPClient) error {
			return c.DeleteAlbum(ctx, "a1")
		}, http.MethodDelete, "/api/albums/a1", ""},
		{"verify album password", func(c *HTTPClient) error {
			return c.VerifyAlbumPassword(ctx, "a1", "pw")
		}, http.MethodPost, "/api/albums/a1/verify-password", ""},
		{"recycle bin", func(c *HTTPClient) error {
			_, err := c.ListRecycledAlbums(ctx, 2, 5)
			return err
		}, http.MethodGet, "/api/albums/recycle", "page=2&page_size=5"},
		{"restore album", func(c *HTTPClient) error {
			return c.RestoreAlbum(ctx, "a1")
		}, http.MethodPost, "/api/albums/a1/restore", ""},
		{"list posts", func(c *HTTPClient) error {
			_, err := c.ListPosts(ctx, 1, 10, PostFilter{Keyword: "go", Order: "desc"})
			return err
		}, http.MethodGet, "/api/blog/posts", "keyword=go&order=desc&page=1&page_size=10"},
		{"get post", func(c *HTTPClient) error {
			_, err := c.GetPost(ctx, "p1")
			return err
		}, http.MethodGet, "/api/blog/posts/p1", ""},
		{"delete post", func(c *HTTPClient) error {
			return c.DeletePost(ctx, "p1")
		}, http.MethodDelete, "/api/blog/posts/p1", ""},
		{"list comments", func(c *HTTPClient) error {
			_, err := c.ListComments(ctx, "p1", 1, 20)
			return err
		}, http.MethodGet, "/api/blog/posts/p1/comments", "page=1&page_size=20"},
		{"album images", func(c *HTTPClient) error {
			_, err := c.ListAlbumImages(ctx, "a1", 1, 20)
			return err
		}, http.MethodGet, "/api/images/album/a1", "page=1&page_size=20"},
		{"image exif", func(c *HTTPClient) error {
			_, err := c.GetImageExif(ctx, "i1")
			return err
		}, http.MethodGet, "/api/images/i1/exif", ""},
		{"batch delete", func(c *HTTPClient) error {
			return c.BatchDeleteImages(ctx, []string{"i1", "i2"})
		}, http.MethodPost, "/api/images/batch-delete", ""},
		{"search", func(c *HTTPClient) error {
			_, err := c.FullTextSearch(ctx, "sunset", "image", 1, 10)
			return err
		}, http.MethodGet, "/api/search/full-text", "keyword=sunset&page=1&page_size=10&type=image"},
		{"update role", func(c *HTTPClient) error {
			return c.UpdateUserRole(ctx, "u1", models.RoleAuthor)
		}, http.MethodPut, "/api/admin/users/u1/role", ""},
		{"toggle active", func(c *HTTPClient) error {
			return c.ToggleUserActive(ctx, "u1", false)
		}, http.MethodPut, "/api/admin/users/u1/active", ""},
		{"stats", func(c *HTTPClient) error {
			_, err := c.SystemStats(ctx)
			return err
		}, http.MethodGet, "/api/admin/system/stats", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var last route
			c := newTestClient(t, recordingBackend(t, nil, &last), &memStore{token: "T1"})

			require.NoError(t, tt.call(c))
			assert.Equal(t, tt.method, last.method)
			assert.Equal(t, tt.path, last.path)
			assert.Equal(t, tt.query, last.query)
		})
	}
}

func TestCreateAlbum_DefaultsToPublic(t *testing.T) {
	var last route
	c := newTestClient(t, recordingBackend(t, map[string]any{"id": "a9", "name": "trip"}, &last), &memStore{token: "T1"})

	a, err := c.CreateAlbum(context.Background(), models.AlbumInput{Name: "trip"})
	require.NoError(t, err)
	assert.Equal(t, "a9", a.ID)
	assert.Equal(t, "PUBLIC", last.body["permission"])
}

func TestCreatePost_SendsEmptyTags(t *testing.T) {
	var last route
	c := newTestClient(t, recordingBackend(t, map[string]any{"id": "p1"}, &last), &memStore{token: "T1"})

	_, err := c.CreatePost(context.Background(), models.BlogPostInput{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, []any{}, last.body["tags"])
}

func TestCreateComment_OmitsEmptyParent(t *testing.T) {
	var last route
	c := newTestClient(t, recordingBackend(t, map[string]any{"id": "c1"}, &last), &memStore{token: "T1"})

	cm, err := c.CreateComment(context.Background(), "p1", "nice", "")
	require.NoError(t, err)
	assert.Equal(t, "c1", cm.ID)
	assert.Equal(t, "/api/blog/posts/p1/comments", last.path)
	assert.NotContains(t, last.body, "parent_id")
}

func TestBatchDeleteImages_EmptyIsNoop(t *testing.T) {
	var last route
	c := newTestClient(t, recordingBackend(t, nil, &last), &memStore{})

	require.NoError(t, c.BatchDeleteImages(context.Background(), nil))
	assert.Empty(t, last.path)
}

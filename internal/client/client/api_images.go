package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/lightgallery/internal/client/models"
)

type imageIDs struct {
	ImageIDs []string `json:"image_ids"`
}

func (c *HTTPClient) ListAlbumImages(ctx context.Context, albumID string, page, pageSize int) (*models.Page[models.Image], error) {
	var res models.Page[models.Image]
	req := &Request{
		Method: http.MethodGet,
		Path:   "/images/album/" + url.PathEscape(albumID),
		Query:  pageQuery(page, pageSize),
	}
	if err := c.Do(ctx, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) GetImage(ctx context.Context, id string) (*models.Image, error) {
	var img models.Image
	if err := c.Do(ctx, &Request{Method: http.MethodGet, Path: "/images/" + url.PathEscape(id)}, &img); err != nil {
		return nil, err
	}
	return &img, nil
}

func (c *HTTPClient) GetImageExif(ctx context.Context, id string) (models.Exif, error) {
	exif := models.Exif{}
	if err := c.Do(ctx, &Request{Method: http.MethodGet, Path: "/images/" + url.PathEscape(id) + "/exif"}, &exif); err != nil {
		return nil, err
	}
	return exif, nil
}

func (c *HTTPClient) DeleteImage(ctx context.Context, id string) error {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: "/images/" + url.PathEscape(id)}, nil)
}

// BatchDeleteImages deletes several images in one call. An empty list is a
// no-op and sends nothing.
func (c *HTTPClient) BatchDeleteImages(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: "/images/batch-delete", Body: imageIDs{ids}}, nil)
}

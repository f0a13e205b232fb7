package models

// Permission controls who can see an album.
type Permission string

const (
	PermissionPublic   Permission = "PUBLIC"
	PermissionPrivate  Permission = "PRIVATE"
	PermissionPassword Permission = "PASSWORD"
)

type Album struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Permission   Permission `json:"permission"`
	CoverImageID string     `json:"cover_image_id,omitempty"`
	ImageCount   int        `json:"image_count"`
	CreatedAt    string     `json:"created_at,omitempty"`
}

// AlbumInput is the body of album create requests.
type AlbumInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Permission  Permission `json:"permission"`
	Password    string     `json:"password,omitempty"`
}

type Image struct {
	ID           string `json:"id"`
	AlbumID      string `json:"album_id"`
	Filename     string `json:"filename"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Size         int64  `json:"size"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// Exif holds the camera metadata extracted from an image.
type Exif map[string]any

type BlogPost struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Content       string   `json:"content,omitempty"`
	IsDraft       bool     `json:"is_draft"`
	IsPrivate     bool     `json:"is_private"`
	CoverImageURL string   `json:"cover_image_url,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	AuthorID      string   `json:"author_id,omitempty"`
	CreatedAt     string   `json:"created_at,omitempty"`
}

// BlogPostInput is the body of post create requests.
type BlogPostInput struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	IsDraft       bool     `json:"is_draft"`
	IsPrivate     bool     `json:"is_private"`
	CoverImageURL string   `json:"cover_image_url,omitempty"`
	Tags          []string `json:"tags"`
}

type Comment struct {
	ID        string `json:"id"`
	PostID    string `json:"post_id"`
	ParentID  string `json:"parent_id,omitempty"`
	Content   string `json:"content"`
	AuthorID  string `json:"author_id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// SearchHit is one result of a full-text search.
type SearchHit struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Snippet string `json:"snippet,omitempty"`
}

// SystemStats is the admin dashboard summary.
type SystemStats struct {
	UserCount  int   `json:"user_count"`
	AlbumCount int   `json:"album_count"`
	ImageCount int   `json:"image_count"`
	PostCount  int   `json:"post_count"`
	StorageUse int64 `json:"storage_used"`
}

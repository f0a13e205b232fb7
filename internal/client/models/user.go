package models

// Role is the user's access level on the gallery.
type Role string

const (
	RoleGuest  Role = "GUEST"
	RoleUser   Role = "USER"
	RoleAuthor Role = "AUTHOR"
	RoleAdmin  Role = "ADMIN"
)

// User is the authenticated-user record returned by /auth/info and /auth/login.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	AvatarURL string `json:"avatar_url,omitempty"`
	IsActive  bool   `json:"is_active,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// LoginResult is the data part of a successful /auth/login response.
type LoginResult struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// TokenResult is the data part of a /auth/refresh response. Servers answer
// either with "token" or with the OAuth-style "access_token".
type TokenResult struct {
	Token       string `json:"token,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
}

// Value returns whichever token field the server filled.
func (t *TokenResult) Value() string {
	if t.Token != "" {
		return t.Token
	}
	return t.AccessToken
}

// Package guard decides whether the current session may open a page and,
// if not, where to send the user instead.
package guard

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/lightgallery/internal/client/models"
)

const (
	LoginPath    = "/login"
	RegisterPath = "/register"
	NotFoundPath = "/404"
	HomePath     = "/home"
)

// Pages reachable without logging in.
var whitelist = map[string]struct{}{
	LoginPath:    {},
	RegisterPath: {},
	NotFoundPath: {},
}

type Route struct {
	Path          string
	Title         string
	RequiresAdmin bool
}

// Session is the part of the credential store the guard reads.
type Session interface {
	IsAuthenticated(ctx context.Context) bool
	Role() models.Role
}

// Decision is the outcome of Check. Redirect is set iff Allow is false.
type Decision struct {
	Allow    bool
	Redirect string
}

// Check applies the navigation rules to route. fullPath is the requested
// location including its query and is carried in the login redirect so the
// user returns there after logging in.
func Check(ctx context.Context, s Session, route Route, fullPath string) Decision {
	if _, ok := whitelist[route.Path]; ok {
		return Decision{Allow: true}
	}

	if !s.IsAuthenticated(ctx) {
		if fullPath == "" {
			fullPath = route.Path
		}
		q := url.Values{"redirect": {fullPath}}
		return Decision{Redirect: LoginPath + "?" + q.Encode()}
	}

	if route.RequiresAdmin && s.Role() != models.RoleAdmin {
		return Decision{Redirect: HomePath}
	}
	return Decision{Allow: true}
}

var roleOrder = map[models.Role]int{
	models.RoleGuest:  0,
	models.RoleUser:   1,
	models.RoleAuthor: 2,
	models.RoleAdmin:  3,
}

// HasRole reports whether role ranks at least as high as required. Unknown
// roles rank nowhere.
func HasRole(role, required models.Role) bool {
	have, ok := roleOrder[role]
	if !ok {
		return false
	}
	need, ok := roleOrder[required]
	if !ok {
		return false
	}
	return have >= need
}

// FilterRoutes drops admin-only routes unless role is ADMIN.
func FilterRoutes(routes []Route, role models.Role) []Route {
	out := make([]Route, 0, len(routes))
	for _, r := range routes {
		if r.RequiresAdmin && role != models.RoleAdmin {
			continue
		}
		out = append(out, r)
	}
	return out
}

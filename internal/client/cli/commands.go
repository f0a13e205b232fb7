package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lightgallery/internal/client/guard"
)

// command pages: each REPL command opens one page of the gallery and is
// subject to the same navigation rules.
var commandRoutes = map[string]guard.Route{
	"login":    {Path: guard.LoginPath, Title: "login"},
	"register": {Path: guard.RegisterPath, Title: "register"},
	"whoami":   {Path: "/profile", Title: "whoami"},
	"albums":   {Path: "/albums", Title: "albums [page]"},
	"posts":    {Path: "/blog", Title: "posts [page]"},
	"search":   {Path: "/search", Title: "search <keyword>"},
	"stats":    {Path: "/admin/stats", Title: "stats", RequiresAdmin: true},
	"metrics":  {Path: "/admin/metrics", Title: "metrics", RequiresAdmin: true},
	"logout":   {Path: "/logout", Title: "logout"},
}

var commandOrder = []string{"login", "register", "whoami", "albums", "posts", "search", "stats", "metrics", "logout"}

// allowed applies the guard to cmd and explains a refusal to the user.
func (a *App) allowed(ctx context.Context, cmd string, args []string) bool {
	route, ok := commandRoutes[cmd]
	if !ok {
		return true
	}
	full := route.Path
	if len(args) > 0 {
		full += "?q=" + strings.Join(args, "+")
	}

	d := guard.Check(ctx, a.store, route, full)
	if d.Allow {
		return true
	}
	switch {
	case strings.HasPrefix(d.Redirect, guard.LoginPath):
		fmt.Fprintln(a.out, "Please log in first")
	default:
		fmt.Fprintln(a.out, "This command requires the ADMIN role")
	}
	a.log.Debug(ctx, "command refused", "command", cmd, "redirect", d.Redirect)
	return false
}

// helpText lists the commands the current session may run.
func (a *App) helpText(ctx context.Context) string {
	routes := make([]guard.Route, 0, len(commandOrder))
	for _, name := range commandOrder {
		r := commandRoutes[name]
		if !a.isLoggedIn(ctx) && r.Path != guard.LoginPath && r.Path != guard.RegisterPath {
			continue
		}
		if a.isLoggedIn(ctx) && (r.Path == guard.LoginPath || r.Path == guard.RegisterPath) {
			continue
		}
		routes = append(routes, r)
	}

	names := make([]string, 0, len(routes)+2)
	for _, r := range guard.FilterRoutes(routes, a.store.Role()) {
		names = append(names, r.Title)
	}
	names = append(names, "help", "exit")
	return "Available commands: " + strings.Join(names, ", ")
}

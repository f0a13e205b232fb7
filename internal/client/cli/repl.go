package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	helpText(ctx context.Context) string
	allowed(ctx context.Context, cmd string, args []string) bool
	takeExpired() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Albums(ctx context.Context, args []string) error
	Posts(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
	Metrics(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the light gallery CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a' once the access guard allows it.
// The loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Commands:
//
//	help                   show the commands available right now
//	register | login       create an account / authenticate
//	whoami                 show the current user
//	albums [page]          list albums
//	posts [page]           list blog posts
//	search <keyword>       full-text search
//	stats | metrics        admin dashboard / client counters (ADMIN only)
//	logout                 end the session
//	exit | quit            leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func(ctx context.Context) string, scanner *bufio.Scanner) {
	for {
		if a.takeExpired() {
			printlnFn("Your session has expired, please log in again")
		}
		printlnFn(fmt.Sprintf("lg %s > ", statusFn(ctx)))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(a.helpText(ctx))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.allowed(ctx, cmd, args) {
			continue
		}

		switch cmd {
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "albums":
			_ = a.Albums(ctx, args)
		case "posts":
			_ = a.Posts(ctx, args)
		case "search":
			_ = a.Search(ctx, args)
		case "stats":
			_ = a.Stats(ctx)
		case "metrics":
			_ = a.Metrics(ctx)
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

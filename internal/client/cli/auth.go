package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lightgallery/internal/client/client"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for username, email and password and creates the
// account. It does not log in.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.authService.Register(ctx, userName, email, password); err != nil {
		fmt.Fprintln(a.out, "Registration failed:", client.UserMessage(err))
		return err
	}

	fmt.Fprintln(a.out, "Success! You can log in now.")
	return nil
}

// Login prompts for credentials and whether to remember the session, then
// authenticates. The password is wiped by the auth service.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	answer, err := getSimpleText(a.reader, "Remember me? [y/N]", a.out)
	if err != nil {
		return err
	}
	remember := strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")

	u, err := a.authService.Login(ctx, userName, password, remember)
	if err != nil {
		fmt.Fprintln(a.out, "Login unsuccessful:", client.UserMessage(err))
		return err
	}

	a.takeExpired()
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", u.Username, u.Role)
	return nil
}

// Logout always ends the local session, even when the server cannot be
// reached.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.log.Warn(ctx, "credential storage not cleared", "error", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the cached user record.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.authService.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> role=%s remembered=%t\n", u.Username, u.Email, u.Role, a.store.Persisted())
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/donapoint/donapoint/internal/session"
)

// getSecret is an indirection used to facilitate testing.
var getSecret = GetSecret

// Login prompts for a third-party identity token and exchanges it for a
// backend session. The paste is not echoed. On failure the session stays
// unauthenticated and the reason is shown to the user.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already logged in. Use 'logout' first to switch accounts.")
		return nil
	}

	idToken, err := getSecret("Paste your identity token", os.Stdout)
	if err != nil {
		return err
	}
	if idToken == "" {
		printlnFn("No token entered.")
		return nil
	}

	if err := a.session.Login(ctx, idToken); err != nil {
		if errors.Is(err, session.ErrNoToken) {
			printlnFn("Login failed: the server did not issue a token.")
			return nil
		}
		printlnFn("Login failed: " + userMessage(err))
		return nil
	}

	user := a.session.CurrentUser()
	printlnFn(fmt.Sprintf("Logged in as %s <%s>.", user.Name, user.Email))
	if !user.Verified {
		printlnFn("Your account is not verified yet; use 'verifyme' to request verification before creating points.")
	}
	return nil
}

// Logout clears the persisted token and cached user. No backend call.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}
	return a.session.Logout(ctx)
}

// Whoami shows the cached user record and, when the token carries one, its
// expiry time.
func (a *App) Whoami(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		printlnFn("Not logged in.")
		return nil
	}

	printCreator(user)
	if exp, ok := a.session.TokenExpiry(); ok {
		printlnFn("session expires: " + exp.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

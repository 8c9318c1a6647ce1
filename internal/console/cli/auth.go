package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/medichannel/admincli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates through the session store.
//
// A non-admin account is rejected by the store even when the backend accepted
// the credentials; that case gets its own message so the user understands
// the password was not the problem.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		switch {
		case errors.Is(err, common.ErrNotAdmin):
			fmt.Fprintln(a.out, common.ErrNotAdmin.Error())
		case errors.Is(err, common.ErrSuperseded):
			// A newer login attempt finished first; nothing to report.
		default:
			fmt.Fprintf(a.out, "Login failed: %s\n", err.Error())
		}
		return err
	}

	if sess := a.session.Current(); sess != nil {
		fmt.Fprintf(a.out, "Welcome, %s!\n", sess.Name)
	}
	return nil
}

// Logout clears the session. It is safe to call when already logged out.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/medichannel/admincli/internal/console/models"
)

// Password changes the logged-in admin's password.
func (a *App) Password(ctx context.Context) error {
	fmt.Fprintln(a.out, "Current password first, then the new one.")

	oldPassword, err := getPassword(a.out)
	if err != nil {
		return err
	}
	newPassword, err := getPassword(a.out)
	if err != nil {
		return err
	}
	if len(newPassword) == 0 {
		fmt.Fprintln(a.out, "New password must not be empty.")
		return nil
	}

	change := models.PasswordChange{
		OldPassword: string(oldPassword),
		NewPassword: string(newPassword),
	}
	if err := a.api.ChangePassword(ctx, change); err != nil {
		if isUnauthorized(err) {
			a.handleFetchError(ctx, err)
			return err
		}
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Password changed.")
	return nil
}

package cli

import (
	"context"
	"fmt"
)

// Login prompts for credentials and opens a session. On success the gemstone
// list is fetched right away so the first 'list' is instant.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return err
	}

	fmt.Fprintln(a.out, "Logged in as", email)
	a.gems.Refresh(ctx)
	return nil
}

// Logout drops the session and its stored token.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password, creates the account and
// logs it in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	u, err := a.store.RegisterUser(ctx, name, email, password)
	if err != nil {
		return err
	}

	a.user = &u
	a.query = ""
	fmt.Fprintf(a.out, "Welcome, %s!\n", u.Name)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	u, err := a.store.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.user = &u
	a.query = ""
	fmt.Fprintf(a.out, "Logged in as %s\n", u.Name)
	return nil
}

// Logout ends the session. It succeeds when nobody is logged in.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	a.query = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI re-reads the session from the store and prints the user.
func (a *App) WhoAmI(ctx context.Context) error {
	if err := a.restoreSession(ctx); err != nil {
		return err
	}
	if a.user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\n", a.user.Name, a.user.Email)
	return nil
}

// DeleteAccount removes the logged-in user after confirmation. The user's
// notes stay in storage.
func (a *App) DeleteAccount(ctx context.Context) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete account %s? Notes are kept on this device.", u.Email), a.out)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}

	if err := a.store.DeleteUser(ctx, u.Email); err != nil {
		return err
	}
	a.user = nil
	a.query = ""
	fmt.Fprintln(a.out, "Account deleted")
	return nil
}

// ABOUTME: Authentication CLI commands
// ABOUTME: login, register, logout, and whoami
package cli

import (
	"context"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"
)

// LoginCommand authenticates and persists the session locally.
func LoginCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "Account email (required)")
	password := fs.String("password", "", "Account password (prompted when omitted)")
	_ = fs.Parse(args)

	pw, err := resolvePassword(*password)
	if err != nil {
		return err
	}
	if err := app.Session.Login(context.Background(), *email, pw); err != nil {
		return err
	}
	user, _ := app.Session.CurrentUser()
	_, _ = fmt.Fprintf(app.out(), "Logged in as %s\n", user.Email)
	return nil
}

// RegisterCommand creates an account and logs in.
func RegisterCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "Account email (required)")
	password := fs.String("password", "", "Account password (prompted when omitted)")
	name := fs.String("name", "", "Display name")
	_ = fs.Parse(args)

	pw, err := resolvePassword(*password)
	if err != nil {
		return err
	}
	if err := app.Session.Register(context.Background(), *email, pw, *name); err != nil {
		return err
	}
	user, _ := app.Session.CurrentUser()
	_, _ = fmt.Fprintf(app.out(), "Registered and logged in as %s\n", user.Email)
	return nil
}

// resolvePassword returns the flag value, or prompts with hidden input
// when the flag was omitted and stdin is a terminal.
func resolvePassword(flagValue string) (string, error) {
	if flagValue != "" || !term.IsTerminal(int(syscall.Stdin)) {
		return flagValue, nil
	}
	fmt.Print("Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}

// LogoutCommand clears the local session. No network call is made.
func LogoutCommand(app *App, _ []string) error {
	app.Session.Logout()
	_, _ = fmt.Fprintln(app.out(), "Logged out")
	return nil
}

// WhoamiCommand prints the current authenticated user, if any.
func WhoamiCommand(app *App, _ []string) error {
	user, ok := app.Session.CurrentUser()
	if !ok {
		_, _ = fmt.Fprintln(app.out(), "Not logged in")
		return nil
	}
	_, _ = fmt.Fprintf(app.out(), "%s <%s>\n", user.Name, user.Email)
	return nil
}

package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/pkg/errors"
)

func handleLogin(ctx context.Context, a *app, args []string) error {
	cmd := flag.NewFlagSet("login", flag.ContinueOnError)
	email := cmd.String("email", "", "Account email")
	password := cmd.String("password", "", "Account password")
	if err := cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse login flags")
	}

	if *email == "" || *password == "" {
		return errors.New("--email and --password flags are required for login command")
	}

	user, err := a.session.Login(ctx, *email, *password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Signed in as %s <%s>\n", user.Name, user.Email)

	return nil
}

func handleLogout(ctx context.Context, a *app, _ []string) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Signed out")

	return nil
}

func handleWhoami(ctx context.Context, a *app, _ []string) error {
	user, err := a.session.Current(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s <%s> id=%s role=%s\n", user.Name, user.Email, user.ID, user.Role)

	return nil
}

package cli

import (
	"context"
	"flag"
	"fmt"

	"postdeck/internal/transfer"
)

func (a *App) cmdLogin(args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	seq := a.authStore.Begin()
	resp, err := a.auth.Login(context.Background(), *email, *password)
	if err != nil {
		a.authStore.Fail(seq, err)
		return err
	}
	a.authStore.ApplyAuth(seq, resp.User, resp.Token)

	if resp.User != nil {
		fmt.Fprintf(a.stdout, "logged in as %s <%s>\n", resp.User.Name, resp.User.Email)
	} else {
		fmt.Fprintln(a.stdout, "logged in")
	}
	return nil
}

func (a *App) cmdRegister(args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	confirm := fs.String("confirm", "", "repeat the password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	seq := a.authStore.Begin()
	resp, err := a.auth.Register(context.Background(), &transfer.RegisterRequest{
		Name:            *name,
		Email:           *email,
		Password:        *password,
		ConfirmPassword: *confirm,
	})
	if err != nil {
		a.authStore.Fail(seq, err)
		return err
	}
	a.authStore.ApplyAuth(seq, resp.User, resp.Token)

	// Registration does not establish a session; the token is returned but
	// only a login persists it.
	fmt.Fprintln(a.stdout, "registered. Run `postdeck login` to start a session.")
	return nil
}

func (a *App) cmdLogout() error {
	if err := a.auth.Logout(); err != nil {
		return err
	}
	a.authStore.Logout()
	fmt.Fprintln(a.stdout, "logged out")
	return nil
}

func (a *App) cmdWhoami() error {
	if _, ok := a.session.Token(); !ok {
		fmt.Fprintln(a.stdout, "not logged in")
		return nil
	}

	expiry, err := a.session.ExpiresAt()
	if err != nil {
		fmt.Fprintln(a.stdout, "logged in (session expiry unknown)")
		return nil
	}
	fmt.Fprintf(a.stdout, "logged in, session expires %s\n", expiry.Local().Format("2006-01-02 15:04"))
	return nil
}

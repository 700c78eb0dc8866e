package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"postdeck/internal/transfer"
	"postdeck/pkg/utils"
)

func (a *App) cmdAccounts(args []string) error {
	if len(args) == 0 {
		return a.accountsList()
	}
	switch args[0] {
	case "list":
		return a.accountsList()
	case "add":
		return a.accountsAdd(args[1:])
	case "connect":
		return a.accountsConnect(args[1:])
	default:
		return fmt.Errorf("unknown accounts subcommand: %s", args[0])
	}
}

func (a *App) accountsList() error {
	project, err := a.requireProject("")
	if err != nil {
		return err
	}

	seq := a.socialStore.Begin()
	accounts, err := a.platform.List(context.Background(), project.ID)
	if err != nil {
		a.socialStore.Fail(seq, err)
		return err
	}
	a.socialStore.ApplyList(seq, accounts)
	a.socialStore.RefreshStatuses(time.Now())

	w := a.table()
	fmt.Fprintln(w, "ID\tPLATFORM\tACCOUNT\tSTATUS\tEXPIRES\tACCESS TOKEN")
	for _, acc := range a.socialStore.Accounts() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			acc.ID, acc.Platform, acc.AccountName, acc.Status,
			acc.ExpiresAt.Local().Format("2006-01-02"),
			utils.MaskToken(acc.AccessToken))
	}
	return w.Flush()
}

func (a *App) accountsAdd(args []string) error {
	fs := flag.NewFlagSet("accounts add", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	platform := fs.String("platform", "", "platform tag")
	name := fs.String("name", "", "display name")
	accessToken := fs.String("access-token", "", "platform access token")
	bearerToken := fs.String("bearer-token", "", "optional bearer token")
	refreshToken := fs.String("refresh-token", "", "optional refresh token")
	expires := fs.String("expires", "", "token expiry, RFC 3339")
	if err := fs.Parse(args); err != nil {
		return err
	}

	project, err := a.requireProject("")
	if err != nil {
		return err
	}

	var expiresAt time.Time
	if *expires != "" {
		expiresAt, err = time.Parse(time.RFC3339, *expires)
		if err != nil {
			return fmt.Errorf("invalid expiry time: %w", err)
		}
	}

	seq := a.socialStore.Begin()
	account, err := a.platform.Add(context.Background(), &transfer.SocialAccountCreation{
		ProjectID:    project.ID,
		Platform:     *platform,
		AccountName:  *name,
		AccessToken:  *accessToken,
		BearerToken:  *bearerToken,
		RefreshToken: *refreshToken,
		ExpiresAt:    expiresAt,
	})
	if err != nil {
		a.socialStore.Fail(seq, err)
		return err
	}
	a.socialStore.ApplyCreate(seq, account)

	fmt.Fprintf(a.stdout, "connected %s account %s (%s)\n",
		account.Platform, account.AccountName, utils.MaskToken(account.AccessToken))
	return nil
}

func (a *App) accountsConnect(args []string) error {
	fs := flag.NewFlagSet("accounts connect", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	platform := fs.String("platform", "", "platform tag")
	if err := fs.Parse(args); err != nil {
		return err
	}

	state, err := gonanoid.New()
	if err != nil {
		return err
	}

	authURL, err := a.platform.AuthURL(*platform, state)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "open this URL to connect your %s account:\n%s\n", *platform, authURL)
	return nil
}

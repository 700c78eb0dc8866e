package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"postdeck/internal/api"
)

func (a *App) renderError(err error) {
	switch api.KindOf(err) {
	case api.KindUnauthenticated:
		fmt.Fprintln(a.stderr, "error: not logged in. Run `postdeck login` first.")
	case api.KindInvalidDraft:
		fmt.Fprintf(a.stderr, "error: draft is not ready: %s\n", messageOf(err))
	case api.KindNetworkFailure:
		fmt.Fprintf(a.stderr, "error: cannot reach the server: %s\n", messageOf(err))
	case api.KindServerError:
		fmt.Fprintf(a.stderr, "error: server rejected the request: %s\n", messageOf(err))
	default:
		fmt.Fprintf(a.stderr, "error: %v\n", err)
	}
}

func messageOf(err error) string {
	var ae *api.Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// Package ui is the terminal front end: a read-eval loop over views, with the
// route guard consulted on every navigation.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sugarstack/sweetshop-cli/internal/catalog"
	"github.com/sugarstack/sweetshop-cli/internal/config"
	"github.com/sugarstack/sweetshop-cli/internal/guard"
	"github.com/sugarstack/sweetshop-cli/internal/models"
	"github.com/sugarstack/sweetshop-cli/internal/session"
	"github.com/sugarstack/sweetshop-cli/internal/toast"
)

// App wires the session manager, catalog controller, and toast store into an
// interactive loop.
type App struct {
	cfg      config.Config
	sessions *session.Manager
	sweets   *catalog.Controller
	toasts   *toast.Store
	log      *logrus.Logger

	in  *bufio.Reader
	out io.Writer

	view    guard.View
	editing *models.Sweet
	quit    bool
}

// New builds the app reading from stdin and writing to stdout.
func New(cfg config.Config, sessions *session.Manager, sweets *catalog.Controller, toasts *toast.Store, log *logrus.Logger) *App {
	return &App{
		cfg:      cfg,
		sessions: sessions,
		sweets:   sweets,
		toasts:   toasts,
		log:      log,
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		view:     guard.ViewCatalog,
	}
}

// Run resolves the session and drives the view loop until the user quits or
// the context is cancelled. No guarded view renders before the probe settles.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Loading session...")
	a.sessions.Initialize(ctx)

	for !a.quit {
		if err := ctx.Err(); err != nil {
			return err
		}

		identity, _ := a.sessions.Identity()
		switch guard.Evaluate(a.sessions.State(), identity, a.view) {
		case guard.ShowLoading:
			// Unreachable after Initialize, kept for completeness.
			fmt.Fprintln(a.out, "Loading session...")
			continue
		case guard.RedirectLogin:
			a.view = guard.ViewLogin
			continue
		case guard.RedirectCatalog:
			a.view = guard.ViewCatalog
			continue
		}

		switch a.view {
		case guard.ViewLogin:
			a.renderLogin(ctx)
		case guard.ViewRegister:
			a.renderRegister(ctx)
		case guard.ViewCatalog:
			a.renderCatalog(ctx)
		case guard.ViewAddSweet:
			a.renderAddSweet(ctx)
		case guard.ViewEditSweet:
			a.renderEditSweet(ctx)
		}
	}

	fmt.Fprintln(a.out, "Bye!")
	return nil
}

// navigate moves to a view after the configured confirmation delay, giving the
// user time to read the toast that preceded it.
func (a *App) navigate(view guard.View, delay time.Duration) {
	if delay > 0 {
		time.Sleep(delay)
	}
	a.view = view
}

// flushToasts renders and dismisses all pending notifications.
func (a *App) flushToasts() {
	for _, t := range a.toasts.Drain() {
		fmt.Fprintf(a.out, "%s %s\n", severityIcon(t.Severity), t.Message)
	}
}

func severityIcon(severity toast.Severity) string {
	switch severity {
	case toast.SeveritySuccess:
		return "[ok]"
	case toast.SeverityError:
		return "[err]"
	case toast.SeverityWarning:
		return "[warn]"
	default:
		return "[info]"
	}
}

// Package cli implements the interactive admin console: a REPL whose
// commands open the list screens, forms and account operations of the
// channeling platform.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/medichannel/admincli/internal/console/api"
	"github.com/medichannel/admincli/internal/console/config"
	"github.com/medichannel/admincli/internal/console/session"
	"github.com/medichannel/admincli/internal/console/storage"
	"github.com/medichannel/admincli/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Store
	api     *api.Client
	store   *storage.SQLite
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	store, err := storage.OpenSQLite(ctx, cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing settings db: %w", err)
	}

	app := &App{
		config: cfg,
		log:    log,
		store:  store,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	// The API client reads the token through the store; the store performs
	// logins through the client.
	app.api = api.New(cfg.BaseURL, cfg.RequestTimeout, func() string {
		if app.session == nil {
			return ""
		}
		return app.session.Token()
	}, log)
	app.session = session.NewStore(store, app.api, log)

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.session.Initialize(ctx)
	if a.session.IsAuthenticated() && !a.session.TokenValid() {
		fmt.Fprintln(a.out, "Stored session has expired, please log in again.")
		a.session.Logout(ctx)
	}
	if sess := a.session.Current(); sess != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", sess.Name)
	}

	fmt.Fprintln(a.out, "Channeling admin console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Close releases the settings database handle.
func (a *App) Close() {
	if a.store != nil {
		_ = a.store.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	sess := a.session.Current()
	if sess == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", sess.Email)
}

// handleFetchError reports a failed data fetch. An authorization failure
// means the session expired on the backend: the one central reaction is to
// clear the session and send the user back to the login prompt.
func (a *App) handleFetchError(ctx context.Context, err error) {
	if isUnauthorized(err) {
		fmt.Fprintln(a.out, "Your session has expired, please log in again.")
		a.session.Logout(ctx)
		return
	}
	fmt.Fprintf(a.out, "Error: %s\n", err.Error())
}

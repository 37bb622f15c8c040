// ABOUTME: Shared dependencies for CLI commands
// ABOUTME: Injected explicitly so tests can swap the clock, output, and backend
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kindredhq/kindred/api"
	"github.com/kindredhq/kindred/engine"
	"github.com/kindredhq/kindred/session"
)

// App carries everything a command needs. Views own their fetched data;
// nothing is cached across commands.
type App struct {
	Client  *api.Client
	Session *session.Store
	Presets *engine.Presets
	Out     io.Writer
	Now     func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) out() io.Writer {
	if a.Out != nil {
		return a.Out
	}
	return os.Stdout
}

// requireAuth gates protected commands on token presence. The token is
// not validated here; an expired token surfaces as a server error and the
// user is pointed back to login.
func (a *App) requireAuth() error {
	if !a.Session.IsAuthenticated() {
		return fmt.Errorf("not logged in; run 'kindred auth login'")
	}
	return nil
}

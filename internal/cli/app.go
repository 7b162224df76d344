// Package cli is the interactive console of the site admin. It plays the
// role of the admin panel: it renders the records, prompts for edits and
// maps service errors to short user messages.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/siteadmin/internal/backup"
	"github.com/dmitrijs2005/siteadmin/internal/logging"
	"github.com/dmitrijs2005/siteadmin/internal/services"
)

// Services bundles what the console needs from the application layer.
type Services struct {
	Auth     services.AuthService
	Programs services.ProgramService
	Admins   services.AdminService
	Content  services.ContentService
	Backup   services.BackupService
}

type App struct {
	svc     Services
	target  backup.Target
	logger  logging.Logger
	timeout time.Duration
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(svc Services, target backup.Target, logger logging.Logger, timeout time.Duration) *App {
	return &App{
		svc:     svc,
		target:  target,
		logger:  logger,
		timeout: timeout,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

// Run starts the console and blocks until the user quits, stdin is closed
// or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the site admin console (type 'help' for commands)")
	a.logger.Debug(ctx, "console started")
	runREPL(ctx, a, a.status, a.reader, a.out)
	a.logger.Debug(ctx, "console stopped")
}

func (a *App) isLoggedIn() bool {
	return a.svc.Auth.Require() == nil
}

func (a *App) status() string {
	if s := a.svc.Auth.Current(); s != nil {
		return s.Email
	}
	return "signed out"
}

// opCtx bounds a single backend operation. Prompts are read before it is
// called so typing time does not count against the deadline.
func (a *App) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

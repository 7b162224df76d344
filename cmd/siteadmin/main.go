package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/siteadmin/internal/backup"
	"github.com/dmitrijs2005/siteadmin/internal/buildinfo"
	"github.com/dmitrijs2005/siteadmin/internal/cli"
	"github.com/dmitrijs2005/siteadmin/internal/config"
	"github.com/dmitrijs2005/siteadmin/internal/cryptox"
	"github.com/dmitrijs2005/siteadmin/internal/logging"
	"github.com/dmitrijs2005/siteadmin/internal/repositories/accounts"
	"github.com/dmitrijs2005/siteadmin/internal/repositories/content"
	"github.com/dmitrijs2005/siteadmin/internal/repositories/records"
	"github.com/dmitrijs2005/siteadmin/internal/services"
)

func main() {
	os.Exit(realMain())
}

// realMain returns the process exit code. Deferred cleanup, including the
// log file, runs before main exits.
func realMain() int {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closer, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, closer); err != nil {
		logger.Error(ctx, "fatal", "error", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg *config.Config, logger logging.Logger, logCloser io.Closer) error {
	scheme, err := cryptox.SchemeByName(cfg.PasswordScheme)
	if err != nil {
		return err
	}
	if scheme.Name() == cryptox.SchemeLegacyBase64 {
		logger.Warn(ctx, "base64 password scheme is reversible and meant for demos only")
	}

	db, err := records.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info(ctx, "records opened", "backend", db.Backend())

	target, err := backup.NewTarget(ctx, cfg)
	if err != nil {
		return err
	}

	store := db.Store()
	contentRepo := content.NewRepository(store)
	accountRepo := accounts.NewRepository(store, scheme)

	app := cli.NewApp(cli.Services{
		Auth:     services.NewAuthService(accountRepo, logger.With("component", "auth")),
		Programs: services.NewProgramService(contentRepo, logger.With("component", "programs")),
		Admins:   services.NewAdminService(accountRepo, scheme, logger.With("component", "admins")),
		Content:  services.NewContentService(contentRepo, logger.With("component", "content")),
		Backup:   services.NewBackupService(store, contentRepo, accountRepo, logger.With("component", "backup")),
	}, target, logger, cfg.OperationTimeout)

	// A read on stdin cannot be interrupted, so a signal ends the process
	// here once the store and the log file are closed.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			logger.Info(context.Background(), "interrupted")
			os.Exit(interrupted(db, logCloser))
		case <-done:
		}
	}()

	app.Run(ctx)
	return nil
}

const exitInterrupted = 130

// interrupted releases resources in order and returns the exit code for a
// signal-terminated run.
func interrupted(closers ...io.Closer) int {
	for _, c := range closers {
		_ = c.Close()
	}
	return exitInterrupted
}

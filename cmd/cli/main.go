package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"superadmin-service/internal/cli"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	logger := newCLILogger()
	defer logger.Sync()

	path, err := cli.DefaultConfigPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	store, err := cli.NewConfigStore(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(store, cli.NewSurveyPrompter(), os.Stdout, logger)
	if err := cli.NewRootCommand(app).ExecuteContext(ctx); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

// newCLILogger only writes warnings to stderr unless SUPERADMIN_DEBUG is set.
func newCLILogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if os.Getenv("SUPERADMIN_DEBUG") != "" {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

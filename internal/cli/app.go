// Package cli implements the superadmin command line tool. It talks to the
// superadmin API directly with the token saved by `superadmin login`.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"superadmin-service/internal/app/config"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/app/services/superadmin_api"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ErrNotLoggedIn = errors.New("not logged in, run `superadmin login` first")

// ClientFactory builds the API client for the loaded config.
type ClientFactory func(cfg Config) contracts.SuperadminClient

type App struct {
	Config    *ConfigStore
	Prompt    Prompter
	Out       io.Writer
	Log       *zap.Logger
	NewClient ClientFactory
}

func NewApp(store *ConfigStore, prompt Prompter, out io.Writer, logger *zap.Logger) *App {
	return &App{
		Config: store,
		Prompt: prompt,
		Out:    out,
		Log:    logger,
		NewClient: func(cfg Config) contracts.SuperadminClient {
			return superadmin_api.NewClient(config.AppSuperadmin{
				BaseUrl:                 cfg.APIURL,
				RequestTimeoutInSeconds: cfg.TimeoutInSeconds,
			}, logger)
		},
	}
}

func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "superadmin",
		Short:         "Manage the healthcare platform from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(app.Out)

	root.AddCommand(
		newLoginCommand(app),
		newLogoutCommand(app),
		newOrganizationsCommand(app),
		newBookingsCommand(app),
		newCMSCommand(app),
	)
	return root
}

// session returns a client and a context carrying the saved token.
func (a *App) session(ctx context.Context) (context.Context, contracts.SuperadminClient, error) {
	cfg, err := a.Config.Load()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Token == "" {
		return nil, nil, ErrNotLoggedIn
	}
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
	ctx = context.WithValue(ctx, constvars.CONTEXT_ACCESS_TOKEN_KEY, cfg.Token)
	return ctx, a.NewClient(cfg), nil
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.Out, format, args...)
}

func (a *App) success(message string) {
	fmt.Fprintln(a.Out, successStyle.Render(message))
}

func (a *App) failure(message string) {
	fmt.Fprintln(a.Out, errorStyle.Render(message))
}

// describeError prefers the upstream message, then the dashboard message.
func describeError(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		if customErr.ServerMessage != "" {
			return customErr.ServerMessage
		}
		return customErr.ClientMessage
	}
	return err.Error()
}

// PrintError writes err the way the dashboard would show it.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("Error: "+describeError(err)))
}

package cli

import (
	"context"
	"strings"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newLoginCommand(app *App) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as a superadmin and save the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.login(cmd.Context(), email)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "superadmin email")
	return cmd
}

func newLogoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Config.ClearSession(); err != nil {
				return err
			}
			app.success("Logged out")
			return nil
		},
	}
}

func (a *App) login(ctx context.Context, email string) error {
	cfg, err := a.Config.Load()
	if err != nil {
		return err
	}

	if strings.TrimSpace(email) == "" {
		email, err = a.Prompt.Input("Email", cfg.Email, nil)
		if err != nil {
			return err
		}
	}
	password, err := a.Prompt.Password("Password")
	if err != nil {
		return err
	}

	request := requests.Login{Email: email, Password: password}
	utils.SanitizeLoginRequest(&request)
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
	login, err := a.NewClient(cfg).Login(ctx, request)
	if err != nil {
		a.Log.Debug("cli.login error from superadmin API", zap.Error(err))
		return err
	}

	if err := a.Config.SaveSession(request.Email, login.Token); err != nil {
		return err
	}
	a.success("Logged in as " + request.Email)
	return nil
}

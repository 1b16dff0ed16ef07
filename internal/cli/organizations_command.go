package cli

import (
	"fmt"
	"strconv"
	"strings"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/utils"

	"github.com/spf13/cobra"
)

func newOrganizationsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "organizations",
		Aliases: []string{"orgs"},
		Short:   "Create and manage organizations",
	}
	cmd.AddCommand(
		newOrganizationsCreateCommand(app),
		newOrganizationsListCommand(app),
		newOrganizationsToggleCommand(app),
		newOrganizationsDeleteCommand(app),
	)
	return cmd
}

func newOrganizationsCreateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create an organization with the interactive wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, err := app.session(cmd.Context())
			if err != nil {
				return err
			}
			return app.runOrganizationWizard(ctx, client)
		},
	}
}

func newOrganizationsListCommand(app *App) *cobra.Command {
	request := requests.ListOrganizations{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.EqualFold(request.Status, constvars.StatusFilterAll) {
				request.Status = ""
			}
			if err := utils.ValidateStruct(request); err != nil {
				return exceptions.ErrInputValidation(err)
			}
			ctx, client, err := app.session(cmd.Context())
			if err != nil {
				return err
			}

			list, err := client.ListOrganizations(ctx, request)
			if err != nil {
				return err
			}
			if len(list.Organizations) == 0 {
				app.printf("%s\n", mutedStyle.Render("No organizations found"))
				return nil
			}

			rows := make([][]string, 0, len(list.Organizations))
			for _, organization := range list.Organizations {
				rows = append(rows, []string{
					organization.Identifier(),
					organization.Name,
					organization.Email,
					fmt.Sprintf("%d/%d", organization.CurrentUsers, organization.MaxUsers),
					fmt.Sprintf("%d/%d", organization.CurrentDoctors, organization.MaxDoctors),
					statusLabel(organization.IsActive),
				})
			}
			app.printf("%s", renderTable([]string{"ID", "NAME", "EMAIL", "USERS", "DOCTORS", "STATUS"}, rows))
			app.printf("%s\n", mutedStyle.Render(fmt.Sprintf("page %d of %d, %d total",
				list.Pagination.CurrentPage, list.Pagination.TotalPages, list.Pagination.Total)))
			return nil
		},
	}
	cmd.Flags().IntVar(&request.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&request.Limit, "limit", 10, "organizations per page")
	cmd.Flags().StringVar(&request.Search, "search", "", "search by name or email")
	cmd.Flags().StringVar(&request.Status, "status", "", "active or inactive")
	return cmd
}

func newOrganizationsToggleCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Activate or deactivate an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.ValidateUrlParamID(args[0]); err != nil {
				return err
			}
			ctx, client, err := app.session(cmd.Context())
			if err != nil {
				return err
			}
			organization, err := client.ToggleOrganizationStatus(ctx, args[0])
			if err != nil {
				return err
			}
			app.success(fmt.Sprintf("%s is now %s", organization.Name, statusLabel(organization.IsActive)))
			return nil
		},
	}
}

func newOrganizationsDeleteCommand(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.ValidateUrlParamID(args[0]); err != nil {
				return err
			}
			if !yes {
				confirmed, err := app.Prompt.Confirm("Delete organization "+strconv.Quote(args[0])+"?", false)
				if err != nil {
					return err
				}
				if !confirmed {
					app.printf("%s\n", mutedStyle.Render("Nothing deleted"))
					return nil
				}
			}
			ctx, client, err := app.session(cmd.Context())
			if err != nil {
				return err
			}
			if err := client.DeleteOrganization(ctx, args[0]); err != nil {
				return err
			}
			app.success("Organization deleted")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation")
	return cmd
}

func statusLabel(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

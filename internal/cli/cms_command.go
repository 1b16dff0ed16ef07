package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"superadmin-service/internal/app/contracts"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/exceptions"
	"superadmin-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newCMSCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cms",
		Short: "Manage dashboard content sections",
	}
	cmd.AddCommand(newCMSImportCommand(app))
	return cmd
}

func newCMSImportCommand(app *App) *cobra.Command {
	var contentType, file string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace a content section with the items in a YAML or JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readCMSContentFile(file)
			if err != nil {
				return err
			}
			ctx, client, err := app.session(cmd.Context())
			if err != nil {
				return err
			}
			return app.importCMSContent(ctx, client, contentType, content)
		},
	}
	cmd.Flags().StringVar(&contentType, "type", "", "content type, e.g. dashboard_offers")
	cmd.Flags().StringVar(&file, "file", "", "YAML or JSON file holding an array of items")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("file")
	return cmd
}

// readCMSContentFile returns the file's items as sanitized JSON.
func readCMSContentFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var items interface{}
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if data, err = json.Marshal(items); err != nil {
			return nil, fmt.Errorf("encode %s: %w", path, err)
		}
	}

	content, err := utils.NormalizeCMSContent(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return content, nil
}

// importCMSContent updates the section when it already exists and creates
// it otherwise.
func (a *App) importCMSContent(ctx context.Context, client contracts.SuperadminCMSClient, contentType string, content []byte) error {
	contentType = strings.TrimSpace(contentType)
	list := requests.ListCMSContents{ContentType: contentType}
	if err := utils.ValidateStruct(list); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	existing, err := client.ListCMSContents(ctx, list)
	if err != nil {
		return err
	}
	for _, record := range existing {
		if record.ContentType != contentType {
			continue
		}
		if _, err := client.UpdateCMSContent(ctx, record.ID, requests.UpdateCMSContent{Content: content}); err != nil {
			return err
		}
		a.success(fmt.Sprintf("Updated %s", contentType))
		return nil
	}

	active := true
	if _, err := client.CreateCMSContent(ctx, requests.CreateCMSContent{
		ContentType: contentType,
		Content:     content,
		IsActive:    &active,
	}); err != nil {
		return err
	}
	a.success(fmt.Sprintf("Created %s", contentType))
	return nil
}

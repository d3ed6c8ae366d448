package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/jira-unfurl-bot/internal/config"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/i18n"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/infrastructure/di"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/unfurl"
	"github.com/urfave/cli/v3"
)

// Previewer renders the unfurl for a single URL without posting it.
type Previewer interface {
	BuildPreview(ctx context.Context, url string) (unfurl.Preview, error)
}

type PreviewCommand struct {
	loadConfig   func(path string) (*config.Config, error)
	newPreviewer func(ctx context.Context, cfg *config.Config, t *i18n.Translations) (Previewer, error)
}

func NewPreviewCommand() *PreviewCommand {
	return &PreviewCommand{
		loadConfig:   config.Read,
		newPreviewer: containerPreviewer,
	}
}

func (c *PreviewCommand) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:      "preview",
		Usage:     t.GetMessage("preview_usage", 0, nil),
		ArgsUsage: "<url>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raw := strings.TrimSpace(cmd.Args().First())
			if raw == "" {
				return errors.New(t.GetMessage("missing_url_argument", 0, nil))
			}

			cfg, err := c.loadConfig(cmd.String("config"))
			if err != nil {
				return err
			}
			// no Slack token needed: nothing is posted
			if err := cfg.ValidateTracker(); err != nil {
				return err
			}

			translations, err := i18n.NewTranslations(cfg.Language, cfg.LocalesDir)
			if err != nil {
				return fmt.Errorf("error al cargar las traducciones: %w", err)
			}

			previewer, err := c.newPreviewer(ctx, cfg, translations)
			if err != nil {
				return err
			}

			preview, err := previewer.BuildPreview(ctx, raw)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(preview.Unfurls(), "", "  ")
			if err != nil {
				return fmt.Errorf("error al serializar el unfurl: %w", err)
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, string(out))
			return err
		},
	}
}

func containerPreviewer(ctx context.Context, cfg *config.Config, t *i18n.Translations) (Previewer, error) {
	// previews never summarize, so skip building a provider that may need credentials
	cfg.Summary.Provider = ""

	container := di.NewContainer(cfg, t)
	if err := container.RegisterDefaultProviders(); err != nil {
		return nil, err
	}
	return container.GetUnfurlService(ctx)
}

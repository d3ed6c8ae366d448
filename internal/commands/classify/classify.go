package classify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/Tomas-vilte/jira-unfurl-bot/internal/errors"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/i18n"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/ui"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/unfurl"
	"github.com/urfave/cli/v3"
)

type ClassifyCommand struct{}

func NewClassifyCommand() *ClassifyCommand {
	return &ClassifyCommand{}
}

func (c *ClassifyCommand) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:      "classify",
		Usage:     t.GetMessage("classify_usage", 0, nil),
		ArgsUsage: "<url>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raw := strings.TrimSpace(cmd.Args().First())
			if raw == "" {
				return errors.New(t.GetMessage("missing_url_argument", 0, nil))
			}

			ref, ok := unfurl.Classify(raw)
			if !ok {
				return fmt.Errorf("%s: %w", t.GetMessage("classify_unrecognized", 0, nil),
					domainErrors.ErrUnrecognizedURL.WithContext("url", raw))
			}

			ui.PrintKeyValue(cmd.Root().Writer, ref.Kind.String(), ref.ID)
			return nil
		},
	}
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Tomas-vilte/jira-unfurl-bot/internal/cli/registry"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/commands/classify"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/commands/preview"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/commands/serve"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/i18n"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/ui"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, translations, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(ctx, os.Args); err != nil {
		ui.HandleAppError(os.Stderr, err, translations)
		stop()
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	lang := os.Getenv("LANGUAGE")
	if lang == "" {
		lang = "en"
	}

	translations, err := i18n.NewTranslations(lang, os.Getenv("LOCALES_DIR"))
	if err != nil {
		return nil, nil, err
	}

	cmdRegistry := registry.NewRegistry(translations)

	if err := cmdRegistry.Register("serve", serve.NewServeCommand()); err != nil {
		return nil, nil, err
	}
	if err := cmdRegistry.Register("classify", classify.NewClassifyCommand()); err != nil {
		return nil, nil, err
	}
	if err := cmdRegistry.Register("preview", preview.NewPreviewCommand()); err != nil {
		return nil, nil, err
	}

	return &cli.Command{
		Name:    "unfurlbot",
		Usage:   translations.GetMessage("app_usage", 0, nil),
		Version: version.FullVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   translations.GetMessage("config_flag", 0, nil),
				Sources: cli.EnvVars("UNFURLBOT_CONFIG"),
			},
		},
		Commands:              cmdRegistry.CreateCommands(),
		EnableShellCompletion: true,
	}, translations, nil
}

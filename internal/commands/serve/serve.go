package serve

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/jira-unfurl-bot/internal/config"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/i18n"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/infrastructure/di"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/logger"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/server"
	"github.com/urfave/cli/v3"
)

// RunFunc starts the bot with a validated configuration and blocks until ctx is done.
type RunFunc func(ctx context.Context, cfg *config.Config, t *i18n.Translations) error

type ServeCommand struct {
	loadConfig func(path string) (*config.Config, error)
	run        RunFunc
}

func NewServeCommand() *ServeCommand {
	return &ServeCommand{
		loadConfig: config.Read,
		run:        runServer,
	}
}

func (c *ServeCommand) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: t.GetMessage("serve_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   t.GetMessage("serve_port_flag", 0, nil),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: t.GetMessage("log_level_flag", 0, nil),
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: t.GetMessage("log_format_flag", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := c.loadConfig(cmd.String("config"))
			if err != nil {
				return err
			}

			if cmd.IsSet("port") {
				cfg.Server.Port = int(cmd.Int("port"))
			}
			if cmd.IsSet("log-level") {
				cfg.Log.Level = cmd.String("log-level")
			}
			if cmd.IsSet("log-format") {
				cfg.Log.Format = cmd.String("log-format")
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("la configuración no es válida: %w", err)
			}

			log := logger.Initialize(cmd.Root().ErrWriter, cfg.Log.Level, cfg.Log.Format)
			ctx = logger.WithLogger(ctx, log)

			// the bot speaks the configured language, not the CLI's
			translations, err := i18n.NewTranslations(cfg.Language, cfg.LocalesDir)
			if err != nil {
				return fmt.Errorf("error al cargar las traducciones: %w", err)
			}

			return c.run(ctx, cfg, translations)
		},
	}
}

func runServer(ctx context.Context, cfg *config.Config, t *i18n.Translations) error {
	container := di.NewContainer(cfg, t)
	defer func() {
		if err := container.Close(); err != nil {
			logger.Warn(ctx, "no se pudo cerrar el contenedor", "error", err)
		}
	}()
	if err := container.RegisterDefaultProviders(); err != nil {
		return err
	}

	svc, err := container.GetUnfurlService(ctx)
	if err != nil {
		return err
	}

	handler := server.NewSlackHandler(ctx, svc, cfg.Slack.SigningSecret, cfg.EventTimeout())

	logger.Info(ctx, "iniciando servidor de webhooks",
		"addr", cfg.Addr(),
		"jira", cfg.Jira.BaseURL,
		"summary_provider", cfg.Summary.Provider)

	return server.NewServer(cfg.Addr(), handler, cfg.ShutdownTimeout()).Run(ctx)
}

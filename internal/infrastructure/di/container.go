package di

import (
	"context"
	"fmt"
	"io"

	"github.com/slack-go/slack"

	"github.com/Tomas-vilte/jira-unfurl-bot/internal/config"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/httpclient"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/i18n"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/infrastructure/summary/gemini"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/infrastructure/summary/intellitldr"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/infrastructure/summary/registry"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/infrastructure/tickets/jira"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/ports"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/services"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/unfurl"
)

// Container gestiona las dependencias de la aplicación
type Container struct {
	config       *config.Config
	translations *i18n.Translations

	// Registries
	summaryRegistry *registry.SummarizerProviderRegistry
	trackerFactory  *jira.JiraProviderFactory

	// Services (lazy initialized)
	tracker       ports.Tracker
	summarizer    ports.Summarizer
	slackClient   ports.SlackClient
	renderer      *unfurl.Renderer
	unfurlService *services.UnfurlService
}

// NewContainer crea un nuevo contenedor de dependencias
func NewContainer(cfg *config.Config, trans *i18n.Translations) *Container {
	return &Container{
		config:          cfg,
		translations:    trans,
		summaryRegistry: registry.NewSummarizerProviderRegistry(),
		trackerFactory:  jira.NewJiraProviderFactory(),
	}
}

// RegisterSummarizerProvider registra un proveedor de resúmenes
func (c *Container) RegisterSummarizerProvider(name string, factory registry.SummarizerProviderFactory) error {
	return c.summaryRegistry.Register(name, factory)
}

// RegisterDefaultProviders registra IntelliTLDR y Gemini
func (c *Container) RegisterDefaultProviders() error {
	if err := c.RegisterSummarizerProvider(config.ProviderIntelliTLDR, intellitldr.NewIntelliTLDRProviderFactory()); err != nil {
		return err
	}
	return c.RegisterSummarizerProvider(config.ProviderGemini, gemini.NewGeminiProviderFactory())
}

// GetSummaryRegistry retorna el registro de proveedores de resúmenes
func (c *Container) GetSummaryRegistry() *registry.SummarizerProviderRegistry {
	return c.summaryRegistry
}

// SetTracker reemplaza el tracker (útil en tests)
func (c *Container) SetTracker(tracker ports.Tracker) {
	c.tracker = tracker
}

// GetTracker retorna el tracker de Jira (lazy initialization)
func (c *Container) GetTracker(ctx context.Context) (ports.Tracker, error) {
	if c.tracker != nil {
		return c.tracker, nil
	}

	tracker, err := c.trackerFactory.CreateClient(ctx, c.config.Jira, c.config.Timeout())
	if err != nil {
		return nil, fmt.Errorf("error al crear el cliente de jira: %w", err)
	}

	c.tracker = tracker
	return c.tracker, nil
}

// SetSummarizer reemplaza el resumidor (útil en tests)
func (c *Container) SetSummarizer(summarizer ports.Summarizer) {
	c.summarizer = summarizer
}

// GetSummarizer retorna el resumidor configurado (lazy initialization)
func (c *Container) GetSummarizer(ctx context.Context) (ports.Summarizer, error) {
	if c.summarizer != nil {
		return c.summarizer, nil
	}

	tracker, err := c.GetTracker(ctx)
	if err != nil {
		return nil, err
	}

	summarizer, err := c.summaryRegistry.CreateSummarizerFromConfig(ctx, c.config, tracker)
	if err != nil {
		return nil, fmt.Errorf("error al crear el resumidor: %w", err)
	}

	c.summarizer = summarizer
	return c.summarizer, nil
}

// SetSlackClient reemplaza el cliente de Slack (útil en tests)
func (c *Container) SetSlackClient(client ports.SlackClient) {
	c.slackClient = client
}

// GetSlackClient retorna el cliente de Slack (lazy initialization)
func (c *Container) GetSlackClient() ports.SlackClient {
	if c.slackClient == nil {
		c.slackClient = slack.New(
			c.config.Slack.BotToken,
			slack.OptionHTTPClient(httpclient.New(c.config.Timeout())),
		)
	}
	return c.slackClient
}

// GetRenderer retorna el renderer de previews (lazy initialization)
func (c *Container) GetRenderer(ctx context.Context) (*unfurl.Renderer, error) {
	if c.renderer != nil {
		return c.renderer, nil
	}

	tracker, err := c.GetTracker(ctx)
	if err != nil {
		return nil, err
	}

	c.renderer = unfurl.NewRenderer(tracker, c.translations, unfurl.Options{
		Emoji:           c.config.Render.Emoji,
		MaxLinked:       c.config.Render.MaxLinkedIssues,
		NarrowThreshold: c.config.Render.NarrowThreshold,
	})
	return c.renderer, nil
}

// GetUnfurlService retorna el servicio de unfurl (lazy initialization)
func (c *Container) GetUnfurlService(ctx context.Context) (*services.UnfurlService, error) {
	if c.unfurlService != nil {
		return c.unfurlService, nil
	}

	tracker, err := c.GetTracker(ctx)
	if err != nil {
		return nil, err
	}

	summarizer, err := c.GetSummarizer(ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := c.GetRenderer(ctx)
	if err != nil {
		return nil, err
	}

	c.unfurlService = services.NewUnfurlService(
		tracker,
		summarizer,
		c.GetSlackClient(),
		renderer,
		c.translations,
	)

	return c.unfurlService, nil
}

// Close libera los recursos del resumidor si los tiene (p. ej. el cliente de Gemini)
func (c *Container) Close() error {
	closer, ok := c.summarizer.(io.Closer)
	if !ok {
		return nil
	}
	if err := closer.Close(); err != nil {
		return fmt.Errorf("error al cerrar el resumidor: %w", err)
	}
	return nil
}

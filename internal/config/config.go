package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	domainErrors "github.com/Tomas-vilte/jira-unfurl-bot/internal/errors"
)

type (
	// Config is built once at startup and handed to every component.
	Config struct {
		Server  ServerConfig  `toml:"server" yaml:"server"`
		Slack   SlackConfig   `toml:"slack" yaml:"slack"`
		Jira    JiraConfig    `toml:"jira" yaml:"jira"`
		Summary SummaryConfig `toml:"summary" yaml:"summary"`
		Render  RenderConfig  `toml:"render" yaml:"render"`
		Log     LogConfig     `toml:"log" yaml:"log"`

		Language   string `toml:"language" yaml:"language"`
		LocalesDir string `toml:"locales_dir" yaml:"locales_dir"`
		// HTTPTimeout bounds every outbound call (Jira, summary service, Slack).
		HTTPTimeout string `toml:"http_timeout" yaml:"http_timeout"`
	}

	ServerConfig struct {
		Port            int    `toml:"port" yaml:"port"`
		ShutdownTimeout string `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
		// EventTimeout bounds the background work started for a single event.
		EventTimeout string `toml:"event_timeout" yaml:"event_timeout"`
	}

	SlackConfig struct {
		BotToken      string `toml:"bot_token" yaml:"bot_token"`
		SigningSecret string `toml:"signing_secret" yaml:"signing_secret"`
	}

	JiraConfig struct {
		BaseURL string `toml:"base_url" yaml:"base_url"`
		// AccessToken is a personal access token sent as a bearer token.
		// When Email is also set it is used as the API token of basic auth instead.
		AccessToken string `toml:"access_token" yaml:"access_token"`
		Email       string `toml:"email" yaml:"email"`
		// SearchMaxResults caps the issues fetched for a version preview.
		SearchMaxResults int `toml:"search_max_results" yaml:"search_max_results"`
	}

	SummaryConfig struct {
		Provider     string `toml:"provider" yaml:"provider"` // "intellitldr", "gemini" or empty
		Endpoint     string `toml:"endpoint" yaml:"endpoint"`
		Token        string `toml:"token" yaml:"token"`
		GeminiAPIKey string `toml:"gemini_api_key" yaml:"gemini_api_key"`
		GeminiModel  string `toml:"gemini_model" yaml:"gemini_model"`
	}

	RenderConfig struct {
		Emoji           string `toml:"emoji" yaml:"emoji"`
		MaxLinkedIssues int    `toml:"max_linked_issues" yaml:"max_linked_issues"`
		NarrowThreshold int    `toml:"narrow_threshold" yaml:"narrow_threshold"`
	}

	LogConfig struct {
		Level  string `toml:"level" yaml:"level"`
		Format string `toml:"format" yaml:"format"`
	}
)

const (
	defaultPort             = 3000
	defaultJiraServer       = "https://issues.redhat.com"
	defaultSummaryEndpoint  = "https://intellitldr.corp.redhat.com/api/summarizer/v1/summarize-issue"
	defaultHTTPTimeout      = "10s"
	defaultShutdownTimeout  = "15s"
	defaultEventTimeout     = "60s"
	defaultEmoji            = "jira"
	defaultMaxLinkedIssues  = 10
	defaultNarrowThreshold  = 10
	defaultSearchMaxResults = 50
)

// Default returns a Config with every optional field populated.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            defaultPort,
			ShutdownTimeout: defaultShutdownTimeout,
			EventTimeout:    defaultEventTimeout,
		},
		Jira: JiraConfig{
			BaseURL:          defaultJiraServer,
			SearchMaxResults: defaultSearchMaxResults,
		},
		Summary: SummaryConfig{
			Provider:    ProviderIntelliTLDR,
			Endpoint:    defaultSummaryEndpoint,
			GeminiModel: DefaultGeminiModel(),
		},
		Render: RenderConfig{
			Emoji:           defaultEmoji,
			MaxLinkedIssues: defaultMaxLinkedIssues,
			NarrowThreshold: defaultNarrowThreshold,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Language:    LangEN,
		HTTPTimeout: defaultHTTPTimeout,
	}
}

// Load builds the configuration with Read and validates all of it.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return cfg, nil
}

// Read layers defaults, then the optional file at path, then the process
// environment (a .env file in the working directory is loaded first when
// present). Nothing is validated.
func Read(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Language != "" {
		cfg.Language = GetLocaleConfig(cfg.Language, cfg.LocalesDir)
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("error al decodificar el archivo TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("error al decodificar el archivo YAML: %w", err)
		}
	default:
		return domainErrors.ErrUnsupportedConfigFormat.WithContext("path", path)
	}

	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Slack.BotToken, "SLACK_BOT_TOKEN")
	setString(&cfg.Slack.SigningSecret, "SLACK_SIGNING_SECRET")
	setString(&cfg.Jira.BaseURL, "JIRA_SERVER")
	setString(&cfg.Jira.AccessToken, "JIRA_ACCESS_TOKEN")
	setString(&cfg.Jira.Email, "JIRA_EMAIL")
	// An explicitly empty SUMMARY_PROVIDER disables summaries.
	if v, ok := os.LookupEnv("SUMMARY_PROVIDER"); ok {
		cfg.Summary.Provider = strings.TrimSpace(v)
	}
	setString(&cfg.Summary.Endpoint, "INTELLITLDR_API")
	setString(&cfg.Summary.Token, "INTELLITLDR_TOKEN")
	setString(&cfg.Summary.GeminiAPIKey, "GEMINI_API_KEY")
	setString(&cfg.Summary.GeminiModel, "GEMINI_MODEL")
	setString(&cfg.HTTPTimeout, "HTTP_TIMEOUT")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")
	setString(&cfg.Language, "LANGUAGE")
	setString(&cfg.LocalesDir, "LOCALES_DIR")

	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT inválido %q: %w", v, err)
		}
		cfg.Server.Port = port
	}

	return nil
}

// setString overrides dst only when the variable is set and non-blank.
func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

// Validate checks the fields the bot cannot start without. A missing
// summary token is not an error here: summaries degrade at call time.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Slack.BotToken) == "" {
		return domainErrors.ErrSlackTokenMissing
	}
	if err := c.ValidateTracker(); err != nil {
		return err
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("puerto fuera de rango: %d", c.Server.Port)
	}
	if c.Language == "" {
		return errors.New("language no puede estar vacío")
	}
	if c.Render.MaxLinkedIssues <= 0 {
		return errors.New("render.max_linked_issues debe ser mayor que 0")
	}
	if c.Render.NarrowThreshold < 0 {
		return errors.New("render.narrow_threshold no puede ser negativo")
	}

	for name, raw := range map[string]string{
		"http_timeout":            c.HTTPTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
		"server.event_timeout":    c.Server.EventTimeout,
	} {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("%s inválido %q: %w", name, raw, err)
		}
		if d <= 0 {
			return fmt.Errorf("%s debe ser positivo", name)
		}
	}

	if !IsSupportedSummaryProvider(c.Summary.Provider) {
		return domainErrors.ErrSummaryProviderUnknown.WithContext("provider", c.Summary.Provider)
	}
	if c.Summary.Provider == ProviderGemini && strings.TrimSpace(c.Summary.GeminiModel) == "" {
		return errors.New("summary.gemini_model no puede estar vacío con el proveedor gemini")
	}

	return nil
}

// ValidateTracker checks only what talking to Jira needs.
func (c *Config) ValidateTracker() error {
	if strings.TrimSpace(c.Jira.BaseURL) == "" || strings.TrimSpace(c.Jira.AccessToken) == "" {
		return domainErrors.ErrJiraConfigMissing
	}
	return nil
}

// Timeout returns the parsed outbound HTTP timeout. Validate guarantees it parses.
func (c *Config) Timeout() time.Duration {
	return mustDuration(c.HTTPTimeout, defaultHTTPTimeout)
}

func (c *Config) ShutdownTimeout() time.Duration {
	return mustDuration(c.Server.ShutdownTimeout, defaultShutdownTimeout)
}

func (c *Config) EventTimeout() time.Duration {
	return mustDuration(c.Server.EventTimeout, defaultEventTimeout)
}

func mustDuration(raw, def string) time.Duration {
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	d, _ := time.ParseDuration(def)
	return d
}

// Addr is the listen address for the webhook server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

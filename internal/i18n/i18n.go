package i18n

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Translations holds the message bundle used for every string the bot
// renders into Slack.
type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations builds the bundle from the embedded defaults and, when
// localesDir is set, any active.*.toml file found there. Files on disk
// override the embedded messages with the same ID.
func NewTranslations(defaultLang string, localesDir string) (*Translations, error) {
	if strings.TrimSpace(defaultLang) == "" {
		return nil, fmt.Errorf("language cannot be empty")
	}
	if _, err := language.Parse(defaultLang); err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", defaultLang, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessagesEN), "default.en.toml")
	bundle.MustParseMessageFileBytes([]byte(defaultMessagesES), "default.es.toml")

	if localesDir != "" {
		files, err := filepath.Glob(filepath.Join(localesDir, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}

		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	return &Translations{
		bundle:   bundle,
		localize: i18n.NewLocalizer(bundle, defaultLang),
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessagesEN = `
[unfurl_view_summary_button]
other = "View AI Summary"

[unfurl_ai_summary_title]
other = "*AI Summary*:"

[unfurl_released_at]
other = "Released at {{.Date}}"

[unfurl_released]
other = "Released"

[unfurl_unreleased]
other = "Unreleased"

[unfurl_more_issues]
one = "... ({{.Count}} more epic/bug to show. <{{.URL}}|See more>)"
other = "... ({{.Count}} more epics/bugs to show. <{{.URL}}|See more>)"

[bot_alive]
other = "I'm alive"

[app_usage]
other = "Rich Slack previews for Jira issue and version links"

[factory_already_registered]
other = "command factory '{{.FactoryName}}' is already registered"

[serve_usage]
other = "Run the Slack webhook server"

[serve_port_flag]
other = "Port to listen on (overrides the config file and PORT)"

[classify_usage]
other = "Show which Jira entity a URL references"

[classify_unrecognized]
other = "not a Jira issue or version URL"

[preview_usage]
other = "Render the unfurl of a URL and print it as JSON"

[config_flag]
other = "Path to a .toml or .yaml config file"

[log_level_flag]
other = "Log level: debug, info, warn or error"

[log_format_flag]
other = "Log format: json, text or pretty"

[missing_url_argument]
other = "a URL argument is required"

[ui_error_details]
other = "Details:"

[ui_error_try_suggestion]
other = "Try:"
`

var defaultMessagesES = `
[unfurl_view_summary_button]
other = "Ver resumen IA"

[unfurl_ai_summary_title]
other = "*Resumen IA*:"

[unfurl_released_at]
other = "Publicada el {{.Date}}"

[unfurl_released]
other = "Publicada"

[unfurl_unreleased]
other = "Sin publicar"

[unfurl_more_issues]
one = "... ({{.Count}} epic/bug más para mostrar. <{{.URL}}|Ver más>)"
other = "... ({{.Count}} epics/bugs más para mostrar. <{{.URL}}|Ver más>)"

[bot_alive]
other = "Estoy vivo"

[app_usage]
other = "Vistas previas de Slack para links de issues y versiones de Jira"

[factory_already_registered]
other = "la factory del comando '{{.FactoryName}}' ya está registrada"

[serve_usage]
other = "Levanta el servidor de webhooks de Slack"

[serve_port_flag]
other = "Puerto de escucha (pisa al archivo de configuración y a PORT)"

[classify_usage]
other = "Muestra qué entidad de Jira referencia una URL"

[classify_unrecognized]
other = "no es una URL de issue ni de versión de Jira"

[preview_usage]
other = "Genera el unfurl de una URL y lo imprime como JSON"

[config_flag]
other = "Ruta a un archivo de configuración .toml o .yaml"

[log_level_flag]
other = "Nivel de log: debug, info, warn o error"

[log_format_flag]
other = "Formato de log: json, text o pretty"

[missing_url_argument]
other = "falta la URL como argumento"

[ui_error_details]
other = "Detalles:"

[ui_error_try_suggestion]
other = "Probá:"
`

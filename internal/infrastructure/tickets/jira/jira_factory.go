package jira

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	jira "github.com/andygrunwald/go-jira"
	"golang.org/x/oauth2"

	"github.com/Tomas-vilte/jira-unfurl-bot/internal/config"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/httpclient"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/ports"
)

// JiraProviderFactory crea el tracker a partir de la configuración
type JiraProviderFactory struct{}

// NewJiraProviderFactory crea una nueva factory para Jira
func NewJiraProviderFactory() *JiraProviderFactory {
	return &JiraProviderFactory{}
}

// CreateClient crea un tracker Jira autenticado
func (f *JiraProviderFactory) CreateClient(ctx context.Context, cfg config.JiraConfig, timeout time.Duration) (ports.Tracker, error) {
	if err := f.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return NewJiraService(cfg.BaseURL, NewHTTPClient(ctx, cfg, timeout), cfg.SearchMaxResults)
}

// ValidateConfig valida la configuración de Jira
func (f *JiraProviderFactory) ValidateConfig(cfg config.JiraConfig) error {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return fmt.Errorf("jira base URL es requerida")
	}
	if strings.TrimSpace(cfg.AccessToken) == "" {
		return fmt.Errorf("jira access token es requerido")
	}
	return nil
}

// Name retorna el nombre del proveedor
func (f *JiraProviderFactory) Name() string {
	return "jira"
}

// NewHTTPClient arma el cliente HTTP autenticado. Con email se usa basic
// auth (Jira Cloud), sin email el token viaja como bearer (PAT de Jira Server).
func NewHTTPClient(ctx context.Context, cfg config.JiraConfig, timeout time.Duration) *http.Client {
	if cfg.Email != "" {
		tp := jira.BasicAuthTransport{
			Username: cfg.Email,
			Password: cfg.AccessToken,
		}
		client := tp.Client()
		client.Timeout = timeout
		return client
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpclient.New(timeout))
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken}))
	client.Timeout = timeout
	return client
}

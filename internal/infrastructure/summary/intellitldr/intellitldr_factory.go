package intellitldr

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/jira-unfurl-bot/internal/config"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/httpclient"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/ports"
)

// IntelliTLDRProviderFactory implementa SummarizerProviderFactory para IntelliTLDR
type IntelliTLDRProviderFactory struct{}

func NewIntelliTLDRProviderFactory() *IntelliTLDRProviderFactory {
	return &IntelliTLDRProviderFactory{}
}

func (f *IntelliTLDRProviderFactory) CreateSummarizer(_ context.Context, cfg *config.Config, _ ports.Tracker) (ports.Summarizer, error) {
	return NewIntelliTLDRService(cfg.Summary.Endpoint, cfg.Summary.Token, httpclient.New(cfg.Timeout())), nil
}

// ValidateConfig solo exige el endpoint. Sin token el servicio arranca igual
// y los resúmenes quedan deshabilitados en tiempo de ejecución.
func (f *IntelliTLDRProviderFactory) ValidateConfig(cfg *config.Config) error {
	if strings.TrimSpace(cfg.Summary.Endpoint) == "" {
		return fmt.Errorf("el endpoint de intellitldr es requerido")
	}
	return nil
}

func (f *IntelliTLDRProviderFactory) Name() string {
	return config.ProviderIntelliTLDR
}

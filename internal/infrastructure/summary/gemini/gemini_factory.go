package gemini

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/jira-unfurl-bot/internal/config"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/ports"
)

// GeminiProviderFactory implementa SummarizerProviderFactory para Gemini
type GeminiProviderFactory struct{}

// NewGeminiProviderFactory crea una nueva factory para Gemini
func NewGeminiProviderFactory() *GeminiProviderFactory {
	return &GeminiProviderFactory{}
}

// CreateSummarizer crea un resumidor respaldado por Gemini
func (f *GeminiProviderFactory) CreateSummarizer(ctx context.Context, cfg *config.Config, tracker ports.Tracker) (ports.Summarizer, error) {
	return NewGeminiSummarizer(ctx, cfg.Summary.GeminiAPIKey, cfg.Summary.GeminiModel, cfg.Language, tracker)
}

// ValidateConfig valida la configuración de Gemini
func (f *GeminiProviderFactory) ValidateConfig(cfg *config.Config) error {
	if cfg.Summary.GeminiAPIKey == "" {
		return fmt.Errorf("gemini API key es requerida")
	}
	if cfg.Summary.GeminiModel == "" {
		return fmt.Errorf("el modelo de gemini es requerido")
	}
	return nil
}

// Name retorna el nombre del proveedor
func (f *GeminiProviderFactory) Name() string {
	return config.ProviderGemini
}

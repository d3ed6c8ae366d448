package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/Tomas-vilte/jira-unfurl-bot/internal/config"
	domainErrors "github.com/Tomas-vilte/jira-unfurl-bot/internal/errors"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/models"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/ports"
)

// SummarizerProviderFactory define la interfaz para crear resumidores
type SummarizerProviderFactory interface {
	// CreateSummarizer crea un resumidor con la configuración proporcionada
	CreateSummarizer(ctx context.Context, cfg *config.Config, tracker ports.Tracker) (ports.Summarizer, error)

	// ValidateConfig valida la configuración para este proveedor
	ValidateConfig(cfg *config.Config) error

	// Name retorna el nombre del proveedor
	Name() string
}

// SummarizerProviderRegistry gestiona el registro de proveedores de resúmenes
type SummarizerProviderRegistry struct {
	mu        sync.RWMutex
	factories map[string]SummarizerProviderFactory
}

// NewSummarizerProviderRegistry crea un nuevo registro vacío
func NewSummarizerProviderRegistry() *SummarizerProviderRegistry {
	return &SummarizerProviderRegistry{
		factories: make(map[string]SummarizerProviderFactory),
	}
}

// Register registra un nuevo proveedor
func (r *SummarizerProviderRegistry) Register(name string, factory SummarizerProviderFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("proveedor de resúmenes '%s' ya esta registrado", name)
	}

	r.factories[name] = factory
	return nil
}

// Get obtiene un factory por nombre
func (r *SummarizerProviderRegistry) Get(name string) (SummarizerProviderFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, domainErrors.ErrSummaryProviderUnknown.WithContext("provider", name)
	}

	return factory, nil
}

// IsRegistered verifica si un proveedor está registrado
func (r *SummarizerProviderRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// CreateSummarizerFromConfig crea el resumidor activo. Sin proveedor
// configurado devuelve uno deshabilitado que nunca tiene resumen.
func (r *SummarizerProviderRegistry) CreateSummarizerFromConfig(
	ctx context.Context,
	cfg *config.Config,
	tracker ports.Tracker,
) (ports.Summarizer, error) {
	if cfg.Summary.Provider == "" {
		return DisabledSummarizer{}, nil
	}

	factory, err := r.Get(cfg.Summary.Provider)
	if err != nil {
		return nil, err
	}

	if err := factory.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuracion de resúmenes invalida para %s: %w", cfg.Summary.Provider, err)
	}

	return factory.CreateSummarizer(ctx, cfg, tracker)
}

// DisabledSummarizer es el resumidor usado cuando no hay proveedor.
type DisabledSummarizer struct{}

func (DisabledSummarizer) Summarize(context.Context, string) models.SummaryResult {
	return models.SummaryUnavailable()
}

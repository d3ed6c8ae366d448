package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	domainErrors "github.com/Tomas-vilte/jira-unfurl-bot/internal/errors"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/logger"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/models"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/ports"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/regex"
)

// GenerateFunc abstrae la llamada al modelo para poder testear sin red.
type GenerateFunc func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error)

// GeminiSummarizer resume issues con Gemini a partir de los datos que
// devuelve el tracker.
type GeminiSummarizer struct {
	client     *genai.Client
	tracker    ports.Tracker
	language   string
	generateFn GenerateFunc
}

func NewGeminiSummarizer(ctx context.Context, apiKey, modelName, language string, tracker ports.Tracker) (*GeminiSummarizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key es requerida")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	s := &GeminiSummarizer{
		client:   client,
		tracker:  tracker,
		language: language,
	}
	s.generateFn = func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
		return model.GenerateContent(ctx, genai.Text(prompt))
	}
	return s, nil
}

func (s *GeminiSummarizer) Summarize(ctx context.Context, issueKey string) models.SummaryResult {
	issue, err := s.tracker.GetIssue(ctx, issueKey)
	if err != nil {
		logger.Error(ctx, "no se pudo obtener el issue para resumir", err, "issue_key", issueKey)
		return models.SummaryUnavailable()
	}

	resp, err := s.generateFn(ctx, buildPrompt(s.language, issue))
	if err != nil {
		logger.Error(ctx, "error generando el resumen", domainErrors.ErrSummaryFetch.WithError(err), "issue_key", issueKey)
		return models.SummaryUnavailable()
	}

	text := strings.TrimSpace(regex.ToSlackMrkdwn(formatResponse(resp)))
	if text == "" {
		logger.Warn(ctx, "respuesta vacía de la IA", "issue_key", issueKey)
		return models.SummaryUnavailable()
	}

	return models.SummaryOf(text)
}

// Close libera el cliente de Gemini.
func (s *GeminiSummarizer) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		// Alcanza con el primer candidato con contenido.
		if sb.Len() > 0 {
			break
		}
	}
	return sb.String()
}

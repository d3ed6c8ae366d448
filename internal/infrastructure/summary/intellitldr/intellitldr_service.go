package intellitldr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	domainErrors "github.com/Tomas-vilte/jira-unfurl-bot/internal/errors"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/httpclient"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/logger"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/models"
)

// IntelliTLDRService pide resúmenes al servicio HTTP de IntelliTLDR.
type IntelliTLDRService struct {
	endpoint string
	token    string
	client   httpclient.HTTPClient
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

func NewIntelliTLDRService(endpoint, token string, client httpclient.HTTPClient) *IntelliTLDRService {
	return &IntelliTLDRService{
		endpoint: endpoint,
		token:    token,
		client:   client,
	}
}

// Summarize devuelve el resumen del issue o un resultado no disponible.
// Ningún error sale de acá: se loguean y el llamador simplemente no
// actualiza el unfurl.
func (s *IntelliTLDRService) Summarize(ctx context.Context, issueKey string) models.SummaryResult {
	if s.token == "" {
		logger.Warn(ctx, "INTELLITLDR_TOKEN no está configurado", "issue_key", issueKey,
			"suggestion", domainErrors.ErrSummaryTokenMissing.Suggestion)
		return models.SummaryUnavailable()
	}

	text, err := s.fetchSummary(ctx, issueKey)
	if err != nil {
		logger.Error(ctx, "error obteniendo el resumen", err, "issue_key", issueKey)
		return models.SummaryUnavailable()
	}

	return models.SummaryOf(text)
}

func (s *IntelliTLDRService) fetchSummary(ctx context.Context, issueKey string) (string, error) {
	reqURL, err := s.requestURL(issueKey)
	if err != nil {
		return "", domainErrors.ErrSummaryFetch.WithError(err).WithContext("key", issueKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", domainErrors.ErrSummaryFetch.WithError(err).WithContext("key", issueKey)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", domainErrors.ErrSummaryFetch.WithError(err).WithContext("key", issueKey)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Debug(ctx, "error cerrando el body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", domainErrors.ErrSummaryFetch.
			WithError(fmt.Errorf("status inesperado: %s", resp.Status)).
			WithContext("key", issueKey)
	}

	var body summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", domainErrors.ErrSummaryFetch.
			WithError(fmt.Errorf("error decodificando la respuesta: %w", err)).
			WithContext("key", issueKey)
	}
	if strings.TrimSpace(body.Summary) == "" {
		return "", domainErrors.ErrSummaryFetch.
			WithError(fmt.Errorf("la respuesta no trae resumen")).
			WithContext("key", issueKey)
	}

	return body.Summary, nil
}

func (s *IntelliTLDRService) requestURL(issueKey string) (string, error) {
	u, err := url.Parse(s.endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("key", issueKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

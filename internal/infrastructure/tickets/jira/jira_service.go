package jira

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	jira "github.com/andygrunwald/go-jira"

	domainErrors "github.com/Tomas-vilte/jira-unfurl-bot/internal/errors"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/httpclient"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/logger"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/models"
)

const defaultSearchMaxResults = 50

// Campos que se piden en la búsqueda de issues de una versión.
var searchFields = []string{"summary", "issuetype"}

// JiraService implementa ports.Tracker sobre go-jira.
type JiraService struct {
	baseURL    string
	client     *jira.Client
	maxResults int
}

// relatedIssueCounts es la respuesta de /version/{id}/relatedIssueCounts.
type relatedIssueCounts struct {
	IssuesFixedCount int `json:"issuesFixedCount"`
}

// NewJiraService crea el servicio. El httpClient ya tiene que traer la
// autenticación y el timeout configurados (ver NewHTTPClient).
func NewJiraService(baseURL string, httpClient httpclient.HTTPClient, maxResults int) (*JiraService, error) {
	client, err := jira.NewClient(httpClient, baseURL)
	if err != nil {
		return nil, fmt.Errorf("error creando el cliente de jira: %w", err)
	}
	if maxResults <= 0 {
		maxResults = defaultSearchMaxResults
	}

	return &JiraService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		client:     client,
		maxResults: maxResults,
	}, nil
}

// GetIssue obtiene un issue por su clave.
func (s *JiraService) GetIssue(ctx context.Context, key string) (*models.Issue, error) {
	issue, resp, err := s.client.Issue.GetWithContext(ctx, key, nil)
	if err != nil {
		return nil, domainErrors.ErrIssueFetch.
			WithError(jira.NewJiraError(resp, err)).
			WithContext("key", key)
	}
	if issue.Fields == nil {
		return nil, domainErrors.ErrInvalidTrackerResponse.WithContext("key", key)
	}

	result := &models.Issue{
		Key:         issue.Key,
		Summary:     issue.Fields.Summary,
		IssueType:   issue.Fields.Type.Name,
		Description: issue.Fields.Description,
		Permalink:   s.permalink(issue.Key),
	}
	if issue.Fields.Status != nil {
		result.Status = issue.Fields.Status.Name
	}

	return result, nil
}

// GetVersion obtiene una versión por su id numérico.
func (s *JiraService) GetVersion(ctx context.Context, id string) (*models.Version, error) {
	numericID, err := strconv.Atoi(id)
	if err != nil {
		return nil, domainErrors.ErrVersionFetch.WithError(err).WithContext("version_id", id)
	}

	version, resp, err := s.client.Version.GetWithContext(ctx, numericID)
	if err != nil {
		return nil, domainErrors.ErrVersionFetch.
			WithError(jira.NewJiraError(resp, err)).
			WithContext("version_id", id)
	}

	result := &models.Version{
		ID:          version.ID,
		Name:        version.Name,
		ProjectID:   strconv.Itoa(version.ProjectID),
		ReleaseDate: version.ReleaseDate,
		Description: version.Description,
	}
	if result.ID == "" {
		result.ID = id
	}
	if version.Released != nil {
		result.Released = *version.Released
	}

	return result, nil
}

// CountIssuesFixedByVersion consulta el contador de issues resueltos en la versión.
// go-jira no expone este endpoint, así que se arma la request a mano.
func (s *JiraService) CountIssuesFixedByVersion(ctx context.Context, versionID string) (int, error) {
	endpoint := fmt.Sprintf("rest/api/2/version/%s/relatedIssueCounts", versionID)
	req, err := s.client.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, domainErrors.ErrRelatedCount.WithError(err).WithContext("version_id", versionID)
	}

	var counts relatedIssueCounts
	resp, err := s.client.Do(req, &counts)
	if err != nil {
		return 0, domainErrors.ErrRelatedCount.
			WithError(jira.NewJiraError(resp, err)).
			WithContext("version_id", versionID)
	}

	return counts.IssuesFixedCount, nil
}

// SearchIssues ejecuta la JQL y devuelve los issues en el orden de Jira.
func (s *JiraService) SearchIssues(ctx context.Context, jql string) ([]models.LinkedIssue, error) {
	issues, resp, err := s.client.Issue.SearchWithContext(ctx, jql, &jira.SearchOptions{
		MaxResults: s.maxResults,
		Fields:     searchFields,
	})
	if err != nil {
		return nil, domainErrors.ErrIssueSearch.
			WithError(jira.NewJiraError(resp, err)).
			WithContext("jql", jql)
	}

	linked := make([]models.LinkedIssue, 0, len(issues))
	for _, issue := range issues {
		if issue.Fields == nil {
			logger.Warn(ctx, "issue sin campos en la búsqueda", "issue_key", issue.Key)
			continue
		}
		linked = append(linked, models.LinkedIssue{
			Key:       issue.Key,
			Permalink: s.permalink(issue.Key),
			Summary:   issue.Fields.Summary,
			IssueType: issue.Fields.Type.Name,
		})
	}

	return linked, nil
}

func (s *JiraService) permalink(key string) string {
	return s.baseURL + "/browse/" + key
}

package preview

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tomas-vilte/jira-unfurl-bot/internal/config"
	domainErrors "github.com/Tomas-vilte/jira-unfurl-bot/internal/errors"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/i18n"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/unfurl"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type mockPreviewer struct {
	mock.Mock
}

func (m *mockPreviewer) BuildPreview(ctx context.Context, url string) (unfurl.Preview, error) {
	args := m.Called(ctx, url)
	return args.Get(0).(unfurl.Preview), args.Error(1)
}

func trackerConfig(baseURL string) *config.Config {
	cfg := config.Default()
	cfg.Jira.BaseURL = baseURL
	cfg.Jira.AccessToken = "pat"
	return cfg
}

func runPreview(t *testing.T, c *PreviewCommand, args ...string) (string, error) {
	t.Helper()
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	var out bytes.Buffer
	app := &cli.Command{
		Name:     "unfurlbot",
		Writer:   &out,
		Flags:    []cli.Flag{&cli.StringFlag{Name: "config"}},
		Commands: []*cli.Command{c.CreateCommand(translations)},
	}
	err = app.Run(context.Background(), append([]string{"unfurlbot", "preview"}, args...))
	return out.String(), err
}

func TestPreviewCommand(t *testing.T) {
	const link = "https://issues.example.com/browse/PROJ-1"

	t.Run("should print the unfurl map as JSON", func(t *testing.T) {
		// arrange
		previewer := new(mockPreviewer)
		previewer.On("BuildPreview", mock.Anything, link).Return(unfurl.Preview{
			URL:    link,
			Color:  "#025BA6",
			Blocks: []slack.Block{slack.NewDividerBlock()},
		}, nil)

		c := &PreviewCommand{
			loadConfig: func(string) (*config.Config, error) { return trackerConfig("https://issues.example.com"), nil },
			newPreviewer: func(context.Context, *config.Config, *i18n.Translations) (Previewer, error) {
				return previewer, nil
			},
		}

		// act
		out, err := runPreview(t, c, link)

		// assert
		require.NoError(t, err)
		var decoded map[string]map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		require.Contains(t, decoded, link)
		assert.Equal(t, "#025BA6", decoded[link]["color"])
		previewer.AssertExpectations(t)
	})

	t.Run("should not require a Slack token", func(t *testing.T) {
		previewer := new(mockPreviewer)
		previewer.On("BuildPreview", mock.Anything, link).Return(unfurl.Preview{URL: link}, nil)
		c := &PreviewCommand{
			loadConfig: func(string) (*config.Config, error) {
				cfg := trackerConfig("https://issues.example.com")
				cfg.Slack.BotToken = ""
				return cfg, nil
			},
			newPreviewer: func(context.Context, *config.Config, *i18n.Translations) (Previewer, error) {
				return previewer, nil
			},
		}

		_, err := runPreview(t, c, link)

		assert.NoError(t, err)
	})

	t.Run("should require Jira credentials", func(t *testing.T) {
		c := &PreviewCommand{
			loadConfig: func(string) (*config.Config, error) {
				cfg := trackerConfig("https://issues.example.com")
				cfg.Jira.AccessToken = ""
				return cfg, nil
			},
			newPreviewer: func(context.Context, *config.Config, *i18n.Translations) (Previewer, error) {
				t.Fatal("previewer must not be built")
				return nil, nil
			},
		}

		_, err := runPreview(t, c, link)

		assert.ErrorIs(t, err, domainErrors.ErrJiraConfigMissing)
	})

	t.Run("should propagate preview errors", func(t *testing.T) {
		previewer := new(mockPreviewer)
		previewer.On("BuildPreview", mock.Anything, "https://example.com/x").
			Return(unfurl.Preview{}, domainErrors.ErrUnrecognizedURL)
		c := &PreviewCommand{
			loadConfig: func(string) (*config.Config, error) { return trackerConfig("https://issues.example.com"), nil },
			newPreviewer: func(context.Context, *config.Config, *i18n.Translations) (Previewer, error) {
				return previewer, nil
			},
		}

		out, err := runPreview(t, c, "https://example.com/x")

		assert.ErrorIs(t, err, domainErrors.ErrUnrecognizedURL)
		assert.Empty(t, out)
	})

	t.Run("should require an argument", func(t *testing.T) {
		_, err := runPreview(t, NewPreviewCommand())

		require.Error(t, err)
		assert.Equal(t, "a URL argument is required", err.Error())
	})
}

func TestPreviewCommand_AgainstJira(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/api/2/issue/PROJ-7", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer pat", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"key": "PROJ-7",
			"fields": {
				"summary": "Crash on start",
				"issuetype": {"name": "Bug"},
				"status": {"name": "New"}
			}
		}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := NewPreviewCommand()
	c.loadConfig = func(string) (*config.Config, error) { return trackerConfig(server.URL), nil }

	link := server.URL + "/browse/PROJ-7"
	out, err := runPreview(t, c, link)

	require.NoError(t, err)
	assert.Contains(t, out, `:jira: *PROJ-7* [*New*] : Crash on start`)
	assert.Contains(t, out, `"view_summary_PROJ-7"`)
	assert.Contains(t, out, `"#`)
}

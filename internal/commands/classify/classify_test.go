package classify

import (
	"bytes"
	"context"
	"testing"

	domainErrors "github.com/Tomas-vilte/jira-unfurl-bot/internal/errors"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/i18n"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runClassify(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	var out bytes.Buffer
	app := &cli.Command{
		Name:     "unfurlbot",
		Writer:   &out,
		Commands: []*cli.Command{NewClassifyCommand().CreateCommand(translations)},
	}

	err = app.Run(context.Background(), append([]string{"unfurlbot", "classify"}, args...))
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	t.Run("should print issue references", func(t *testing.T) {
		out, err := runClassify(t, "https://issues.redhat.com/browse/OCPBUGS-1234")

		assert.NoError(t, err)
		assert.Equal(t, "issue OCPBUGS-1234\n", out)
	})

	t.Run("should print version references", func(t *testing.T) {
		out, err := runClassify(t, "https://issues.redhat.com/projects/OCPBUGS/versions/12345")

		assert.NoError(t, err)
		assert.Equal(t, "version 12345\n", out)
	})

	t.Run("should print issues under a project path", func(t *testing.T) {
		out, err := runClassify(t, "https://issues.redhat.com/projects/OCPBUGS/issues/OCPBUGS-9")

		assert.NoError(t, err)
		assert.Equal(t, "issue OCPBUGS-9\n", out)
	})

	t.Run("should fail on unrecognized URLs", func(t *testing.T) {
		out, err := runClassify(t, "https://example.com/foo")

		require.Error(t, err)
		assert.ErrorIs(t, err, domainErrors.ErrUnrecognizedURL)
		assert.Contains(t, err.Error(), "not a Jira issue or version URL")
		assert.Empty(t, out)
	})

	t.Run("should require an argument", func(t *testing.T) {
		_, err := runClassify(t)

		require.Error(t, err)
		assert.Equal(t, "a URL argument is required", err.Error())
	})
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeApp(t *testing.T) {
	t.Setenv("LANGUAGE", "")
	t.Setenv("LOCALES_DIR", "")

	app, translations, err := initializeApp()

	require.NoError(t, err)
	require.NotNil(t, translations)
	assert.Equal(t, "unfurlbot", app.Name)
	assert.Equal(t, "v0.1.0", app.Version)

	names := make([]string, 0, len(app.Commands))
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"classify", "preview", "serve"}, names)
}

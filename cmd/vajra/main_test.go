package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solquant/vajra/settings"
)

func TestLoadRunSecret(t *testing.T) {
	secretName = ""
	secret, err := loadRunSecret()
	require.NoError(t, err)
	assert.Equal(t, settings.Secret{}, secret)

	path := filepath.Join(t.TempDir(), "secret.json")
	payload := `{"alpha_vantage_api_key": "from-secret", "database_url": "postgres://db/vajra"}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	secretName = path
	cloudSecret = false
	t.Cleanup(func() { secretName = "" })

	secret, err = loadRunSecret()
	require.NoError(t, err)
	assert.Equal(t, "from-secret", secret.AlphaVantageKey)
	assert.Equal(t, "postgres://db/vajra", secret.DatabaseURL)
}

func TestNewAlphaClientPrefersSecretKey(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", "")

	// Without a secret or the env var there is no usable key.
	_, err := newAlphaClient(settings.Secret{})
	assert.Error(t, err)

	client, err := newAlphaClient(settings.Secret{AlphaVantageKey: "from-secret"})
	require.NoError(t, err)
	assert.NotNil(t, client)

	t.Setenv("ALPHA_VANTAGE_API_KEY", "from-env")
	client, err = newAlphaClient(settings.Secret{})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

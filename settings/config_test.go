package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := Default()
	assert.Equal(t, "SOL", config.Symbol)
	assert.Equal(t, "combined", config.StrategyMode)
	assert.Equal(t, 14, config.RsiPeriod)
	assert.Equal(t, 30.0, config.RsiOversold)
	assert.Equal(t, 70.0, config.RsiOverbought)
	assert.Equal(t, 20, config.BollingerPeriod)
	assert.Equal(t, 2.0, config.BollingerStdDev)
	assert.Equal(t, SizingNotional, config.SizingPolicy)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "symbol: ETH\nstrategy_mode: rsi\nrsi_period: 7\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ETH", config.Symbol)
	assert.Equal(t, "rsi", config.StrategyMode)
	assert.Equal(t, 7, config.RsiPeriod)
	// Untouched fields stay at their defaults.
	assert.Equal(t, 30.0, config.RsiOversold)
	assert.Equal(t, 20, config.BollingerPeriod)
	assert.Equal(t, 10000.0, config.InitialCapital)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("symbol: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadSecretFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.json")
	payload := `{"alpha_vantage_api_key": "demo", "database_url": "postgres://localhost/vajra"}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	secret, err := LoadSecret(path, false)
	require.NoError(t, err)
	assert.Equal(t, "demo", secret.AlphaVantageKey)
	assert.Equal(t, "postgres://localhost/vajra", secret.DatabaseURL)
}

package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBarsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.csv")
	content := "timestamp,open,high,low,close,volume\n" +
		"172800000,101,103,100,102,1200\n" +
		"86400000,100,102,99,101,1000\n" +
		"259200000,102,104,101,103,1400\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	bars, err := LoadBarsCSV(path)
	require.NoError(t, err)
	require.Len(t, bars, 3)

	// Rows come back sorted even when the file is not.
	assert.Equal(t, int64(86400000), bars[0].Timestamp)
	assert.Equal(t, int64(172800000), bars[1].Timestamp)
	assert.Equal(t, int64(259200000), bars[2].Timestamp)
	assert.Equal(t, 101.0, bars[0].Close)
	assert.Equal(t, 1400.0, bars[2].Volume)
}

func TestLoadBarsCSVMissingFile(t *testing.T) {
	_, err := LoadBarsCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultManifestURL, cfg.Manifest.URL)
	assert.Equal(t, ".yml", cfg.Manifest.Suffix)
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, "west.yml", cfg.Output.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "pretty", cfg.Logging.Format)
}

func TestValidate_FillsEmptyFields(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, Default(), cfg)
}

func TestValidate_KeepsValidValues(t *testing.T) {
	cfg := &Config{
		Manifest: ManifestConfig{
			URL:    "https://example.com/west.yml",
			Suffix: ".yaml",
		},
		Fetch:   FetchConfig{Timeout: 5 * time.Second},
		Output:  OutputConfig{Path: "out.yml"},
		Logging: LoggingConfig{Level: "debug", Format: "json"},
	}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "https://example.com/west.yml", cfg.Manifest.URL)
	assert.Equal(t, ".yaml", cfg.Manifest.Suffix)
	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, "out.yml", cfg.Output.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestValidate_SubSecondTimeout(t *testing.T) {
	cfg := &Config{Fetch: FetchConfig{Timeout: 100 * time.Millisecond}}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultTimeout, cfg.Fetch.Timeout)
}

func TestConfigFilePath(t *testing.T) {
	path := ConfigFilePath()

	assert.Equal(t, "config.yaml", filepath.Base(path))
	assert.True(t, strings.Contains(path, ".westconf"))
}

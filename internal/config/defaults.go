package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values
const (
	// DefaultManifestURL is the NXP MCUXpresso SDK manifest repository
	DefaultManifestURL = "https://raw.githubusercontent.com/nxp-mcuxpresso/mcuxsdk-manifests/main/west.yml"

	// DefaultSuffix is the manifest file suffix convention
	DefaultSuffix = ".yml"

	DefaultTimeout    = 30 * time.Second
	DefaultOutputPath = "west.yml"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".westconf"
	}
	return filepath.Join(home, ".westconf")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Manifest: ManifestConfig{
			URL:    DefaultManifestURL,
			Suffix: DefaultSuffix,
		},
		Fetch: FetchConfig{
			Timeout: DefaultTimeout,
		},
		Output: OutputConfig{
			Path: DefaultOutputPath,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

package config

import "time"

// Config represents the application configuration
type Config struct {
	Manifest ManifestConfig `mapstructure:"manifest" yaml:"manifest"`
	Fetch    FetchConfig    `mapstructure:"fetch" yaml:"fetch"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// ManifestConfig identifies the remote root manifest
type ManifestConfig struct {
	URL    string `mapstructure:"url" yaml:"url"`
	Suffix string `mapstructure:"suffix" yaml:"suffix"`
}

// FetchConfig contains HTTP fetch settings
type FetchConfig struct {
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
	UserAgent string        `mapstructure:"user_agent" yaml:"user_agent"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and applies defaults for invalid values
func (c *Config) Validate() error {
	if c.Manifest.URL == "" {
		c.Manifest.URL = DefaultManifestURL
	}
	if c.Manifest.Suffix == "" {
		c.Manifest.Suffix = DefaultSuffix
	}
	if c.Fetch.Timeout < time.Second {
		c.Fetch.Timeout = DefaultTimeout
	}
	if c.Output.Path == "" {
		c.Output.Path = DefaultOutputPath
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}

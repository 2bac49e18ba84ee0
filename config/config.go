package config

import (
	"net/url"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config represents the application configuration
type Config struct {
	APIBaseURL string `mapstructure:"api_base_url"`
	LogLevel   string `mapstructure:"log_level"`
	LogFormat  string `mapstructure:"log_format"`
	Indent     string `mapstructure:"indent"`
	Progress   bool   `mapstructure:"progress"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		APIBaseURL: "https://api.github.com",
		LogLevel:   "warn",
		LogFormat:  "console",
		Indent:     "  ",
		Progress:   false,
	}
}

// LoadConfig returns the defaults when path is empty. Otherwise the file at
// path is read on top of the defaults; its format follows the extension.
// Environment variables are not consulted.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	if _, err := os.Stat(path); err != nil {
		return Config{}, errors.Wrap(err, "error reading config file")
	}

	v := viper.New()
	setDefaults(v, config)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrapf(err, "error parsing config file %s", path)
	}

	if err := v.Unmarshal(&config); err != nil {
		return Config{}, errors.Wrap(err, "error decoding config")
	}

	if err := config.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config file %s", path)
	}

	return config, nil
}

func setDefaults(v *viper.Viper, config Config) {
	v.SetDefault("api_base_url", config.APIBaseURL)
	v.SetDefault("log_level", config.LogLevel)
	v.SetDefault("log_format", config.LogFormat)
	v.SetDefault("indent", config.Indent)
	v.SetDefault("progress", config.Progress)
}

// Validate checks that the configuration can be used
func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("api_base_url is required")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return errors.Errorf("api_base_url must be an absolute URL: %q", c.APIBaseURL)
	}

	switch c.LogFormat {
	case "console", "json":
	default:
		return errors.Errorf("log_format must be console or json: %q", c.LogFormat)
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return errors.Errorf("unknown log_level: %q", c.LogLevel)
	}

	return nil
}

package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Settings are the non-secret audit options loadable from a config file.
type Settings struct {
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RecvWindow time.Duration `mapstructure:"recv_window"`
}

func DefaultSettings() Settings {
	return Settings{
		BaseURL:    "https://api.binance.com",
		Timeout:    10 * time.Second,
		RecvWindow: 5 * time.Second,
	}
}

// LoadSettings reads Settings from the given file, filling unset fields with
// defaults. An empty path returns the defaults untouched.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return settings, nil
}

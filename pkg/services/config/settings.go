package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Settings is the optional run configuration file (yaml), controlling the
// discovery fan-out and the admin client's retry budget.
type Settings struct {
	Concurrency   int     `mapstructure:"concurrency"`
	RetryMax      int     `mapstructure:"retry_max"`
	RetryWaitSecs float64 `mapstructure:"retry_wait_seconds"`
}

func DefaultSettings() Settings {
	return Settings{
		Concurrency:   1,
		RetryMax:      3,
		RetryWaitSecs: 1,
	}
}

func (s Settings) RetryWait() time.Duration {
	return time.Duration(s.RetryWaitSecs * float64(time.Second))
}

// LoadSettings reads settings from path, falling back to defaults for any
// key the file does not set.
func LoadSettings(path string) (Settings, error) {
	defaults := DefaultSettings()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("concurrency", defaults.Concurrency)
	v.SetDefault("retry_max", defaults.RetryMax)
	v.SetDefault("retry_wait_seconds", defaults.RetryWaitSecs)

	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

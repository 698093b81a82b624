package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Settings holds application-level options, as opposed to the scenario
// inputs carried in the YAML configuration file. Values come from an
// optional ontaff.yaml settings file and ONTAFF_* environment variables.
type Settings struct {
	OutputFormat string        `mapstructure:"output_format"`
	LogLevel     string        `mapstructure:"log_level"`
	RateCacheTTL time.Duration `mapstructure:"rate_cache_ttl"`
	RedisAddr    string        `mapstructure:"redis_addr"`
}

// LoadSettings reads application settings. path may be empty, in which case
// only the working directory and environment are consulted. A missing
// settings file is not an error; defaults apply.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigName("ontaff")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")
	v.SetEnvPrefix("ONTAFF")
	v.AutomaticEnv()

	v.SetDefault("output_format", "console")
	v.SetDefault("log_level", "info")
	v.SetDefault("rate_cache_ttl", "1h")
	v.SetDefault("redis_addr", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &settings, nil
}

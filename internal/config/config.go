// Package config loads runtime configuration from an optional apiscope.yaml
// file, falling back to defaults when the file is absent.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings.
type Config struct {
	ListenAddr    string        `mapstructure:"listen_addr"`
	FetchTimeout  time.Duration `mapstructure:"fetch_timeout"`
	MaxBodyBytes  int64         `mapstructure:"max_body_bytes"`
	DefaultFormat string        `mapstructure:"default_format"`
}

// Load reads configuration from apiscope.yaml in the given directories (the
// working directory when none are given). A missing config file is not an
// error; defaults apply.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("apiscope")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen_addr", "127.0.0.1:8099")
	v.SetDefault("fetch_timeout", "30s")
	v.SetDefault("max_body_bytes", int64(10<<20))
	v.SetDefault("default_format", "table")
}

// Package config loads the exporter's configuration from the process
// environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Defaults for the optional settings.
const (
	DefaultNUTPort      = 3493
	DefaultExporterPort = 9293
)

// Config holds the exporter's runtime configuration. It is immutable after
// Load returns.
type Config struct {
	Host         string `mapstructure:"host"`          // NUT daemon address
	UPS          string `mapstructure:"ups"`           // UPS name to query
	NUTPort      int    `mapstructure:"nut_port"`      // NUT daemon port
	ExporterPort int    `mapstructure:"exporter_port"` // local listen port
}

// Load reads configuration from the environment. HOST and UPS are
// required; NUT_PORT and EXPORTER_PORT fall back to defaults. A missing
// required variable is reported by name so startup can abort with a
// descriptive error before any network binding.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("nut_port", DefaultNUTPort)
	v.SetDefault("exporter_port", DefaultExporterPort)

	for _, key := range []string{"host", "ups", "nut_port", "exporter_port"} {
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("bind environment variable %s: %w", strings.ToUpper(key), err)
		}
	}

	cfg := &Config{
		Host:         v.GetString("host"),
		UPS:          v.GetString("ups"),
		NUTPort:      v.GetInt("nut_port"),
		ExporterPort: v.GetInt("exporter_port"),
	}

	var missing []string
	if cfg.Host == "" {
		missing = append(missing, "HOST")
	}
	if cfg.UPS == "" {
		missing = append(missing, "UPS")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// ListenAddr returns the exporter's local listen address.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.ExporterPort)
}

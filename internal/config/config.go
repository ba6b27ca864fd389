// internal/config/config.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds tool defaults that command-line flags may override.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Clean   CleanConfig   `mapstructure:"clean"`
}

// LoggingConfig controls log verbosity and rendering.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format"` // "text" or "json"
}

// CleanConfig groups settings for the cleaning pipeline itself.
type CleanConfig struct {
	Threads int  `mapstructure:"threads"` // 0 = all CPUs
	Report  bool `mapstructure:"report"`
}

// Load reads configuration from an optional YAML file and the environment
// (FASTA_CLEANER_* variables). An empty path searches the working directory
// for fasta-cleaner.yaml; a missing file is not an error, an explicit one is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("FASTA_CLEANER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("fasta-cleaner")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("clean.threads", 0)
	v.SetDefault("clean.report", false)
}

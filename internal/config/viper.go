// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
	} `mapstructure:"csv" yaml:"csv"`

	Output struct {
		// Indent pretty-prints report JSON when true.
		Indent     bool `mapstructure:"indent" yaml:"indent"`
		IncludeRaw bool `mapstructure:"include_raw" yaml:"include_raw"`
	} `mapstructure:"output" yaml:"output"`

	Codes struct {
		// TypesFile and StatusesFile point at YAML label override files.
		TypesFile    string `mapstructure:"types_file" yaml:"types_file"`
		StatusesFile string `mapstructure:"statuses_file" yaml:"statuses_file"`
	} `mapstructure:"codes" yaml:"codes"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then an optional config file, then environment
// variables prefixed with BUREAU_JSON.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("bureau-json")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.config/bureau-json")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine; defaults and environment apply.
	}

	v.SetEnvPrefix("BUREAU_JSON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.include_headers", true)
	v.SetDefault("output.indent", true)
	v.SetDefault("output.include_raw", true)
	v.SetDefault("codes.types_file", "account_types.yaml")
	v.SetDefault("codes.statuses_file", "account_statuses.yaml")
}

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/mmcdole/faccess/pkg/identity"
)

// Config holds the faccess configuration
type Config struct {
	// Logging settings
	LogLevel    string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error panic DEBUG INFO WARN ERROR PANIC"`
	LogFile     string `mapstructure:"log_file"`     // Optional: application log, stderr when empty
	DecisionLog string `mapstructure:"decision_log"` // Optional: one line per access decision

	// Check settings
	Root     string `mapstructure:"root"`                                   // Optional: resolve paths beneath this directory
	Identity string `mapstructure:"identity" validate:"omitempty,identity"` // Optional: uid:gid[:groups] to check as

	// Shell settings
	HistoryFile string `mapstructure:"history_file"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("identity", func(fl validator.FieldLevel) bool {
		_, err := identity.Parse(fl.Field().String())
		return err == nil
	})
	return v
}

// LoadConfig loads configuration from an optional file, FACCESS_* environment
// variables and defaults, in increasing order of precedence: defaults, file,
// environment. bind may attach command-line flags, which take precedence over all.
func LoadConfig(path string, bind func(v *viper.Viper) error) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FACCESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", "warn")
	v.SetDefault("log_file", "")
	v.SetDefault("decision_log", "")
	v.SetDefault("root", "")
	v.SetDefault("identity", "")
	v.SetDefault("history_file", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if bind != nil {
		if err := bind(v); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Relative file paths in a config file are relative to that file
	if path != "" {
		configDir := filepath.Dir(path)
		for _, p := range []*string{&config.LogFile, &config.DecisionLog, &config.Root, &config.HistoryFile} {
			if *p != "" && !filepath.IsAbs(*p) {
				*p = filepath.Join(configDir, *p)
			}
		}
	}

	if err := validate.Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &config, nil
}

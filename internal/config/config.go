package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/evgfitil/cbsub/internal/logging"
)

const (
	Dir        = ".config/cbsub"
	File       = "config.yaml"
	PromptsDir = "prompts"
	EnvPrefix  = "CBSUB"
)

// Config represents the application configuration
type Config struct {
	PromptsDir string          `mapstructure:"prompts_dir"`
	Preview    bool            `mapstructure:"preview"`
	Clipboard  ClipboardConfig `mapstructure:"clipboard"`
	Guard      GuardConfig     `mapstructure:"guard"`
	Log        LogConfig       `mapstructure:"log"`
}

// ClipboardConfig overrides clipboard detection.
type ClipboardConfig struct {
	Command string `mapstructure:"command"`
}

// GuardConfig controls secret detection on the output.
type GuardConfig struct {
	Block bool `mapstructure:"block"`
}

// LogConfig controls diagnostics on stderr.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// configDir returns the directory holding the config file
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, Dir), nil
}

// Load reads configuration from ~/.config/cbsub/config.yaml and CBSUB_*
// environment variables. A missing config file is not an error.
func Load() (*Config, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, File)

	viper.SetDefault("prompts_dir", filepath.Join(dir, PromptsDir))
	viper.SetDefault("preview", false)
	viper.SetDefault("clipboard.command", "")
	viper.SetDefault("guard.block", false)
	viper.SetDefault("log.level", logging.DefaultLevel)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if readErr := viper.ReadInConfig(); readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(readErr, os.ErrNotExist) && !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var cfg Config
	if unmarshalErr := viper.Unmarshal(&cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	cfg.PromptsDir = expandHome(cfg.PromptsDir)

	if _, levelErr := logging.ParseLevel(cfg.Log.Level); levelErr != nil {
		return nil, fmt.Errorf("log.level in %s: %w", path, levelErr)
	}

	return &cfg, nil
}

// expandHome resolves a leading ~/ against the home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Path returns the path to the config file
func Path() string {
	dir, err := configDir()
	if err != nil {
		return filepath.Join("~", Dir, File)
	}
	return filepath.Join(dir, File)
}

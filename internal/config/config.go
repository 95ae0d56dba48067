// Package config loads the app settings file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/gbianchi/impara/internal/progress"
)

const (
	configName = "config"
	configType = "yaml"
	envPrefix  = "IMPARA"
)

// Config is the merged application configuration: built-in defaults,
// overridden by the config file, overridden by IMPARA_* environment
// variables.
type Config struct {
	// Thresholds tune the completion and achievement rules.
	Thresholds progress.Thresholds

	// TimedQuestions is the question count per timed challenge.
	TimedQuestions int

	// PacksDir is the directory scanned for user content packs, in
	// addition to the built-in ones.
	PacksDir string
}

// Load reads the configuration. A missing config file is not an error;
// defaults and environment variables still apply. Pass nil to use a
// fresh viper instance.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	configDir, err := defaultConfigDir()
	if err != nil {
		return nil, err
	}
	packsDir, err := defaultPacksDir()
	if err != nil {
		return nil, err
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(configDir)

	v.SetDefault("thresholds.completion_ratio", 0.8)
	v.SetDefault("thresholds.speed_bonus_seconds", 120)
	v.SetDefault("thresholds.speed_bonus_ratio", 0.8)
	v.SetDefault("thresholds.subject_mastery_count", 5)
	v.SetDefault("thresholds.persistence_count", 10)
	v.SetDefault("timed.questions", 10)
	v.SetDefault("packs.dir", packsDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		Thresholds: progress.Thresholds{
			CompletionRatio:     v.GetFloat64("thresholds.completion_ratio"),
			SpeedBonusSeconds:   v.GetInt("thresholds.speed_bonus_seconds"),
			SpeedBonusRatio:     v.GetFloat64("thresholds.speed_bonus_ratio"),
			SubjectMasteryCount: v.GetInt("thresholds.subject_mastery_count"),
			PersistenceCount:    v.GetInt("thresholds.persistence_count"),
		},
		TimedQuestions: v.GetInt("timed.questions"),
		PacksDir:       v.GetString("packs.dir"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	t := c.Thresholds
	if t.CompletionRatio <= 0 || t.CompletionRatio > 1 {
		return fmt.Errorf("thresholds.completion_ratio = %v, must be in (0, 1]", t.CompletionRatio)
	}
	if t.SpeedBonusRatio <= 0 || t.SpeedBonusRatio > 1 {
		return fmt.Errorf("thresholds.speed_bonus_ratio = %v, must be in (0, 1]", t.SpeedBonusRatio)
	}
	if t.SpeedBonusSeconds <= 0 || t.SubjectMasteryCount <= 0 || t.PersistenceCount <= 0 {
		return errors.New("achievement thresholds must be positive")
	}
	if c.TimedQuestions <= 0 {
		return fmt.Errorf("timed.questions = %d, must be positive", c.TimedQuestions)
	}
	return nil
}

// defaultConfigDir resolves $XDG_CONFIG_HOME/impara, falling back to
// ~/.config/impara.
func defaultConfigDir() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "impara"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "impara"), nil
}

// defaultPacksDir resolves $XDG_DATA_HOME/impara/packs, falling back to
// ~/.local/share/impara/packs.
func defaultPacksDir() (string, error) {
	if base := os.Getenv("XDG_DATA_HOME"); base != "" {
		return filepath.Join(base, "impara", "packs"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "impara", "packs"), nil
}

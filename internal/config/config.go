package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"questbox/internal/storage"
)

type Config struct {
	// DBPath is where the SQLite database lives.
	DBPath string `mapstructure:"db_path"`
	// Language is the default language for fresh users (en|zh).
	Language string `mapstructure:"language"`
	// SuggestDelay is the simulated thinking time of the stub suggester.
	SuggestDelay time.Duration `mapstructure:"suggest_delay"`
}

// Load reads ~/.questbox.yaml if present, layered under QUESTBOX_* env vars.
// A missing config file is fine; defaults cover everything.
func Load() (*Config, error) {
	v := viper.New()

	defaultDB, err := storage.DefaultDBPath()
	if err != nil {
		return nil, err
	}
	v.SetDefault("db_path", defaultDB)
	v.SetDefault("language", "en")
	v.SetDefault("suggest_delay", 1500*time.Millisecond)

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".questbox.yaml")
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("QUESTBOX")
	v.AutomaticEnv()
	_ = v.BindEnv("db_path")
	_ = v.BindEnv("language")
	_ = v.BindEnv("suggest_delay")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tinytelemetry/boardroom/internal/model"
	"github.com/tinytelemetry/boardroom/internal/prefs"
	"github.com/tinytelemetry/boardroom/internal/theme"

	"github.com/spf13/viper"
)

// appConfig holds all dashboard configuration.
type appConfig struct {
	Dashboard       string        `mapstructure:"dashboard"` // optional YAML override
	ThemeDefault    string        `mapstructure:"theme-default"`
	PrefsBackend    string        `mapstructure:"prefs-backend"`
	PrefsPath       string        `mapstructure:"prefs-path"`
	LogFile         string        `mapstructure:"log-file"`
	LogLevel        string        `mapstructure:"log-level"`
	SwipeThreshold  int           `mapstructure:"swipe-threshold"`
	CellWidthPx     int           `mapstructure:"cell-width-px"`
	RevealDuration  time.Duration `mapstructure:"reveal-duration"`
	ThemeTransition time.Duration `mapstructure:"theme-transition"`
	WrapNavigation  bool          `mapstructure:"wrap-navigation"`
	Mouse           bool          `mapstructure:"mouse"`
}

// fallbackTheme is the theme used when nothing valid is stored.
func (c appConfig) fallbackTheme() theme.State {
	st, _ := theme.ParseState(c.ThemeDefault)
	return st
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}
	dataDir := filepath.Join(home, ".local", "share", "boardroom")

	v := viper.New()
	v.SetEnvPrefix("BOARDROOM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("dashboard", "")
	v.SetDefault("theme-default", model.DefaultTheme)
	v.SetDefault("prefs-backend", model.DefaultPrefsBackend)
	v.SetDefault("prefs-path", "")
	v.SetDefault("log-file", filepath.Join(dataDir, "boardroom.log"))
	v.SetDefault("log-level", model.DefaultLogLevel)
	v.SetDefault("swipe-threshold", model.DefaultSwipeThreshold)
	v.SetDefault("cell-width-px", model.DefaultCellWidthPx)
	v.SetDefault("reveal-duration", model.DefaultRevealDuration)
	v.SetDefault("theme-transition", model.DefaultThemeTransition)
	v.SetDefault("wrap-navigation", false)
	v.SetDefault("mouse", true)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "boardroom", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	if cfg.PrefsPath == "" {
		switch cfg.PrefsBackend {
		case prefs.BackendDuckDB:
			cfg.PrefsPath = filepath.Join(dataDir, "prefs.duckdb")
		default:
			cfg.PrefsPath = filepath.Join(dataDir, "prefs.yml")
		}
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c appConfig) validate() error {
	var errs []error
	if _, ok := theme.ParseState(c.ThemeDefault); !ok {
		errs = append(errs, fmt.Errorf("theme-default: %q is not dark or light", c.ThemeDefault))
	}
	switch c.PrefsBackend {
	case prefs.BackendFile, prefs.BackendDuckDB:
	default:
		errs = append(errs, fmt.Errorf("prefs-backend: unknown backend %q", c.PrefsBackend))
	}
	if c.SwipeThreshold <= 0 {
		errs = append(errs, fmt.Errorf("swipe-threshold: must be positive, got %d", c.SwipeThreshold))
	}
	if c.CellWidthPx <= 0 {
		errs = append(errs, fmt.Errorf("cell-width-px: must be positive, got %d", c.CellWidthPx))
	}
	return errors.Join(errs...)
}

// Package config loads the application settings from defaults, an optional
// ~/.fitqii/config.yaml, and FITQII_* environment variables, in that order of
// precedence (later wins).
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/HERYORDEJY/FitQii/internal/query"
)

// Config is the resolved application configuration.
type Config struct {
	DatabasePath    string
	StoreTimeout    time.Duration
	RefreshInterval time.Duration

	StaleToday  time.Duration
	StaleWeek   time.Duration
	StalePast   time.Duration
	StaleList   time.Duration
	StaleDetail time.Duration
	StaleByDate time.Duration
	StaleRange  time.Duration
	StaleCount  time.Duration
}

// Load resolves the configuration. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	appDir := filepath.Join(home, ".fitqii")

	stale := query.DefaultStaleness()
	v.SetDefault("database.path", filepath.Join(appDir, "sessions.db"))
	v.SetDefault("store.timeout", 10*time.Second)
	v.SetDefault("refresh.interval", 5*time.Minute)
	v.SetDefault("stale.today", stale.Today)
	v.SetDefault("stale.week", stale.Week)
	v.SetDefault("stale.past", stale.Past)
	v.SetDefault("stale.list", stale.List)
	v.SetDefault("stale.detail", stale.Detail)
	v.SetDefault("stale.bydate", stale.ByDate)
	v.SetDefault("stale.range", stale.Range)
	v.SetDefault("stale.count", stale.Count)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(appDir)

	v.SetEnvPrefix("FITQII")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		DatabasePath:    v.GetString("database.path"),
		StoreTimeout:    v.GetDuration("store.timeout"),
		RefreshInterval: v.GetDuration("refresh.interval"),
		StaleToday:      v.GetDuration("stale.today"),
		StaleWeek:       v.GetDuration("stale.week"),
		StalePast:       v.GetDuration("stale.past"),
		StaleList:       v.GetDuration("stale.list"),
		StaleDetail:     v.GetDuration("stale.detail"),
		StaleByDate:     v.GetDuration("stale.bydate"),
		StaleRange:      v.GetDuration("stale.range"),
		StaleCount:      v.GetDuration("stale.count"),
	}, nil
}

// QueryConfig maps the configuration onto the query layer's settings.
func (c *Config) QueryConfig() query.Config {
	return query.Config{
		StoreTimeout:    c.StoreTimeout,
		RefreshInterval: c.RefreshInterval,
		Staleness: query.Staleness{
			Today:  c.StaleToday,
			Week:   c.StaleWeek,
			Past:   c.StalePast,
			List:   c.StaleList,
			Detail: c.StaleDetail,
			ByDate: c.StaleByDate,
			Range:  c.StaleRange,
			Count:  c.StaleCount,
		},
	}
}

// Package config loads the laskin CLI/REPL preferences: TOML with
// embedded defaults, overridden by the user's own config files.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

//go:embed defaults.toml
var defaultsToml string

var (
	cfg     *Config
	styles  Styles
	once    sync.Once
	loadErr error
)

// Load reads configuration once per process: embedded defaults first,
// then each user config file merged on top. Safe to call repeatedly.
func Load() (*Config, error) {
	once.Do(func() {
		cfg, loadErr = load()
		if cfg != nil {
			styles = cfg.REPL.Theme.BuildStyles()
		}
	})
	return cfg, loadErr
}

// GetStyles returns the lipgloss styles built from the loaded theme.
// Load must have succeeded first.
func GetStyles() Styles {
	if cfg == nil {
		panic("config.Load() must be called before config.GetStyles()")
	}
	return styles
}

// userConfigPaths lists the user's config files in merge order: the
// home-directory fallback first, the XDG path last so it wins.
func userConfigPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return nil
	}
	return []string{
		filepath.Join(home, ".laskinrc.toml"),
		filepath.Join(home, ".config", "laskin", "config.toml"),
	}
}

func load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if err := v.ReadConfig(strings.NewReader(defaultsToml)); err != nil {
		panic("invalid embedded defaults.toml: " + err.Error())
	}

	for _, path := range userConfigPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		v.SetConfigFile(path)
		// A malformed user file falls back to whatever is merged so far.
		_ = v.MergeInConfig()
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Reload forces a fresh load. Test helper only.
func Reload() (*Config, error) {
	once = sync.Once{}
	cfg = nil
	styles = Styles{}
	loadErr = nil
	return Load()
}

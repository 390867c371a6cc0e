package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := Reload()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.REPL.Theme.Primary != "#7D56F4" {
		t.Errorf("expected default primary #7D56F4, got %s", cfg.REPL.Theme.Primary)
	}
	if cfg.REPL.Theme.Error != "#FF5555" {
		t.Errorf("expected default error #FF5555, got %s", cfg.REPL.Theme.Error)
	}
	if cfg.REPL.StackPreview != 10 {
		t.Errorf("expected default stack_preview 10, got %d", cfg.REPL.StackPreview)
	}
}

func TestLoad_UserConfigMerge(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	configDir := filepath.Join(tmpHome, ".config", "laskin")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	userConfig := `[repl.theme]
primary = "#ABCDEF"
`
	configPath := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(configPath, []byte(userConfig), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Reload()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.REPL.Theme.Primary != "#ABCDEF" {
		t.Errorf("expected user override #ABCDEF, got %s", cfg.REPL.Theme.Primary)
	}
	if cfg.REPL.Theme.Error != "#FF5555" {
		t.Errorf("expected default error preserved, got %s", cfg.REPL.Theme.Error)
	}
}

func TestLoad_FallbackConfig(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	fallbackConfig := `[repl.theme]
muted = "#00FF00"
`
	fallbackPath := filepath.Join(tmpHome, ".laskinrc.toml")
	if err := os.WriteFile(fallbackPath, []byte(fallbackConfig), 0644); err != nil {
		t.Fatalf("failed to write fallback config: %v", err)
	}

	cfg, err := Reload()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.REPL.Theme.Muted != "#00FF00" {
		t.Errorf("expected fallback override #00FF00, got %s", cfg.REPL.Theme.Muted)
	}
}

func TestLoad_XDGPriorityOverFallback(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	fallbackConfig := `[repl.theme]
primary = "#FF0000"
`
	fallbackPath := filepath.Join(tmpHome, ".laskinrc.toml")
	if err := os.WriteFile(fallbackPath, []byte(fallbackConfig), 0644); err != nil {
		t.Fatalf("failed to write fallback: %v", err)
	}

	configDir := filepath.Join(tmpHome, ".config", "laskin")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	xdgConfig := `[repl.theme]
primary = "#00FF00"
`
	xdgPath := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(xdgPath, []byte(xdgConfig), 0644); err != nil {
		t.Fatalf("failed to write XDG config: %v", err)
	}

	cfg, err := Reload()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.REPL.Theme.Primary != "#00FF00" {
		t.Errorf("expected XDG priority #00FF00, got %s", cfg.REPL.Theme.Primary)
	}
}

func TestBuildStyles(t *testing.T) {
	theme := ThemeConfig{
		Primary:   "#111111",
		Accent:    "#222222",
		Error:     "#333333",
		Muted:     "#444444",
		Dimmed:    "#555555",
		Output:    "#666666",
		Separator: "#777777",
	}

	styles := theme.BuildStyles()

	if result := styles.Prompt.Render("test"); result == "" {
		t.Error("expected non-empty rendered output")
	}
	_ = styles.Error.Render("error")
	_ = styles.Output.Render("output")
	_ = styles.Hint.Render("hint")
}

func TestGetStyles_AfterLoad(t *testing.T) {
	_, err := Reload()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	styles := GetStyles()

	if result := styles.Prompt.Render("laskin"); result == "" {
		t.Error("expected non-empty styled output")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("WHALECALC_THEME", "")
	return dir
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	isolate(t)

	if Exists() {
		t.Fatal("Exists() = true in empty config dir")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("Load() = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestSaveThenLoad(t *testing.T) {
	dir := isolate(t)

	cfg := DefaultConfig()
	cfg.General.DefaultPrincipal = 2500
	cfg.General.DefaultDays = 90
	cfg.General.ShowAllDays = true
	cfg.Appearance.Theme = "tokyo-night"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := filepath.Join(dir, "whalecalc", "config.toml"); Path() != want {
		t.Fatalf("Path() = %q, want %q", Path(), want)
	}

	info, err := os.Stat(Path())
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config mode = %o, want 600", perm)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestLoad_ClampsDefaults(t *testing.T) {
	isolate(t)

	raw := "[general]\ndefault_principal = 5.0\ndefault_days = 0\n"
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DefaultPrincipal != 100 {
		t.Errorf("DefaultPrincipal = %v, want 100", cfg.General.DefaultPrincipal)
	}
	if cfg.General.DefaultDays != 1 {
		t.Errorf("DefaultDays = %d, want 1", cfg.General.DefaultDays)
	}
	if cfg.Appearance.Theme != DefaultTheme {
		t.Errorf("Theme = %q, want %q", cfg.Appearance.Theme, DefaultTheme)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	isolate(t)

	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err == nil {
		t.Fatal("Load succeeded on malformed TOML")
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load on error returned %+v, want defaults", cfg)
	}
}

func TestTheme_EnvOverride(t *testing.T) {
	isolate(t)
	cfg := DefaultConfig()

	if got := Theme(cfg); got != DefaultTheme {
		t.Errorf("Theme() = %q, want %q", got, DefaultTheme)
	}
	t.Setenv("WHALECALC_THEME", "terminal")
	if got := Theme(cfg); got != "terminal" {
		t.Errorf("Theme() with env = %q, want terminal", got)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("WHALECALC_THEME", "tokyo-night")

	o, err := LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if o.Theme != "tokyo-night" {
		t.Errorf("Theme = %q, want tokyo-night", o.Theme)
	}
}

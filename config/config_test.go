package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), Filename))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	doc := `pref_path: /data/vita
log_level: debug
log_imports: true
border_width: 8
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.PrefPath != "/data/vita" {
		t.Errorf("PrefPath = %q", cfg.PrefPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if !cfg.LogImports {
		t.Error("LogImports should be true")
	}
	if cfg.BorderWidth != 8 {
		t.Errorf("BorderWidth = %d, want 8", cfg.BorderWidth)
	}
	// Unset keys keep their defaults.
	if cfg.BorderHeight != Default().BorderHeight {
		t.Errorf("BorderHeight = %d, want default", cfg.BorderHeight)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	if err := os.WriteFile(path, []byte("pref_path: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("malformed config should fail loudly")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)

	want := Config{
		PrefPath:     "/tmp/vita",
		LogLevel:     "warn",
		LogImports:   true,
		BorderWidth:  4,
		BorderHeight: 2,
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

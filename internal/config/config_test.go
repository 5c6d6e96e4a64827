package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg=%+v, want defaults", cfg)
	}
}

func TestLoadParsesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timescore.yaml")
	body := "sleep_bonus: 7.5\ndb_path: /tmp/ts.db\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SleepBonus != 7.5 {
		t.Fatalf("sleep_bonus=%v, want 7.5", cfg.SleepBonus)
	}
	if cfg.DBPath != "/tmp/ts.db" {
		t.Fatalf("db_path=%q, want /tmp/ts.db", cfg.DBPath)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timescore.yaml")
	if err := os.WriteFile(path, []byte("sleep_bonus: [not a number"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDefaultPathHonorsEnvOverride(t *testing.T) {
	t.Setenv("TIMESCORE_CONFIG", "/etc/timescore.yaml")
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if path != "/etc/timescore.yaml" {
		t.Fatalf("path=%q, want env override", path)
	}
}

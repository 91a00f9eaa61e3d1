package config

import (
	"os"
	"path/filepath"
	"testing"

	"tasklist/internal/task"
)

func TestLoadOrCreate_WritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", DefaultConfigFileName)

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate() err = %v, want nil", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if want := filepath.Join(dir, "sub", DefaultDBName); cfg.DBPath != want {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, want)
	}
	if cfg.StorageKey != task.DefaultKey {
		t.Errorf("StorageKey = %q, want %q", cfg.StorageKey, task.DefaultKey)
	}
	if len(cfg.Seeds) != 3 {
		t.Errorf("Seeds = %d, want 3", len(cfg.Seeds))
	}

	again, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("second LoadOrCreate() err = %v, want nil", err)
	}
	if again.DBPath != cfg.DBPath || again.Keys != cfg.Keys {
		t.Errorf("reloaded config differs: %+v vs %+v", again, cfg)
	}
}

func TestLoadOrCreate_FillsMissingFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFileName)
	data := `
db_path = "/var/tmp/custom.db"
log_level = "debug"

[keys]
add = "n"

[[seed]]
id = 7
text = "only seed"
pending = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate() err = %v, want nil", err)
	}
	if cfg.DBPath != "/var/tmp/custom.db" {
		t.Errorf("DBPath = %q, want absolute path kept", cfg.DBPath)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "text" {
		t.Errorf("log = %q/%q, want debug/text", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.Keys.Add != "n" || cfg.Keys.Quit != "q" || cfg.Keys.Select != " " {
		t.Errorf("Keys = %+v, want add=n with defaults elsewhere", cfg.Keys)
	}
	if cfg.LogPath != "" {
		t.Errorf("LogPath = %q, want empty when unset", cfg.LogPath)
	}

	seeds := cfg.SeedSnapshots()
	want := []task.Snapshot{{ID: 7, Text: "only seed", Status: true}}
	if len(seeds) != 1 || seeds[0] != want[0] {
		t.Errorf("SeedSnapshots() = %+v, want %+v", seeds, want)
	}
}

func TestLoadOrCreate_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	if err := os.WriteFile(path, []byte("db_path = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrCreate(path); err == nil {
		t.Fatal("LoadOrCreate() err = nil, want parse error")
	}
}

func TestResolveConfigPath_Env(t *testing.T) {
	t.Setenv(ConfigEnv, "/tmp/tasklist-test.toml")
	if got := ResolveConfigPath(); got != "/tmp/tasklist-test.toml" {
		t.Fatalf("ResolveConfigPath() = %q, want env value", got)
	}
}

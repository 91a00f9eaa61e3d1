package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"tasklist/internal/task"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "tasks.db"
	DefaultLogName        = "tasklist.log"
	AppDirName            = "tasklist"
	ConfigEnv             = "TASKLIST_CONFIG"
)

type Keymap struct {
	Quit     string `toml:"quit"`
	Add      string `toml:"add"`
	Up       string `toml:"up"`
	Down     string `toml:"down"`
	Select   string `toml:"select"`
	Remove   string `toml:"remove"`
	Complete string `toml:"complete"`
	Confirm  string `toml:"confirm"`
	Blur     string `toml:"blur"`
	Cancel   string `toml:"cancel"`
}

type Seed struct {
	ID      int    `toml:"id"`
	Text    string `toml:"text"`
	Pending bool   `toml:"pending"`
}

type Config struct {
	DBPath     string `toml:"db_path"`
	StorageKey string `toml:"storage_key"`
	LogPath    string `toml:"log_path"`
	LogLevel   string `toml:"log_level"`
	LogFormat  string `toml:"log_format"`
	Keys       Keymap `toml:"keys"`
	Seeds      []Seed `toml:"seed"`
}

// ResolveConfigPath returns $TASKLIST_CONFIG or config.toml under the user
// config directory, falling back to the working directory.
func ResolveConfigPath() string {
	if p := os.Getenv(ConfigEnv); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, AppDirName, DefaultConfigFileName)
}

// LoadOrCreate reads path, writing the defaults there first if it does not exist.
// Relative db and log paths are resolved against the config file's directory.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return resolvePaths(cfg, path), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	// decode onto a zero value so a [[seed]] list replaces the defaults
	var loaded Config
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return cfg, err
	}
	fillDefaults(&loaded)
	return resolvePaths(loaded, path), nil
}

// SeedSnapshots converts the configured seeds for task.Restore.
func (c Config) SeedSnapshots() []task.Snapshot {
	snaps := make([]task.Snapshot, 0, len(c.Seeds))
	for _, s := range c.Seeds {
		snaps = append(snaps, task.Snapshot{ID: s.ID, Text: s.Text, Status: s.Pending})
	}
	return snaps
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func fillDefaults(cfg *Config) {
	def := defaultConfig()
	if cfg.DBPath == "" {
		cfg.DBPath = def.DBPath
	}
	if cfg.StorageKey == "" {
		cfg.StorageKey = def.StorageKey
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = def.LogFormat
	}
	k, d := &cfg.Keys, def.Keys
	for _, f := range []struct {
		v   *string
		def string
	}{
		{&k.Quit, d.Quit}, {&k.Add, d.Add}, {&k.Up, d.Up}, {&k.Down, d.Down},
		{&k.Select, d.Select}, {&k.Remove, d.Remove}, {&k.Complete, d.Complete},
		{&k.Confirm, d.Confirm}, {&k.Blur, d.Blur}, {&k.Cancel, d.Cancel},
	} {
		if *f.v == "" {
			*f.v = f.def
		}
	}
	if cfg.Seeds == nil {
		cfg.Seeds = def.Seeds
	}
}

func resolvePaths(cfg Config, configPath string) Config {
	base := filepath.Dir(configPath)
	if cfg.DBPath != "" && !filepath.IsAbs(cfg.DBPath) {
		cfg.DBPath = filepath.Join(base, cfg.DBPath)
	}
	if cfg.LogPath != "" && !filepath.IsAbs(cfg.LogPath) {
		cfg.LogPath = filepath.Join(base, cfg.LogPath)
	}
	return cfg
}

func defaultConfig() Config {
	seeds := task.DefaultSeeds()
	cfgSeeds := make([]Seed, 0, len(seeds))
	for _, s := range seeds {
		cfgSeeds = append(cfgSeeds, Seed{ID: s.ID, Text: s.Text, Pending: s.Status})
	}
	return Config{
		DBPath:     DefaultDBName,
		StorageKey: task.DefaultKey,
		LogPath:    DefaultLogName,
		LogLevel:   "info",
		LogFormat:  "text",
		Keys: Keymap{
			Quit:     "q",
			Add:      "a",
			Up:       "k",
			Down:     "j",
			Select:   " ",
			Remove:   "d",
			Complete: "c",
			Confirm:  "enter",
			Blur:     "tab",
			Cancel:   "esc",
		},
		Seeds: cfgSeeds,
	}
}

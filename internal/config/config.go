// Package config handles loading and saving user configuration for liveocr.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Hotkey names the global toggle shortcut.
type Hotkey struct {
	Modifiers []string `yaml:"modifiers"` // "ctrl", "alt", "shift", "win"
	Key       string   `yaml:"key"`
}

// OCR configures the external recognition command. The command receives a
// PNG on stdin and writes detected lines as a JSON array on stdout.
type OCR struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// Config holds all user configuration for liveocr.
type Config struct {
	Dictionary   string `yaml:"dictionary"`     // path to the CEDICT JSON source
	CacheDir     string `yaml:"cache_dir"`      // binary dictionary cache directory
	HistoryDB    string `yaml:"history_db"`     // lookup history database, empty disables
	FontPath     string `yaml:"font_path"`      // TTF used for overlay labels, optional
	PollInterval int    `yaml:"poll_interval"`  // pointer poll interval in milliseconds
	QueueSize    int    `yaml:"queue_size"`     // bounded input queue capacity
	Hotkey       Hotkey `yaml:"hotkey"`
	OCR          OCR    `yaml:"ocr"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	dir, _ := Dir()
	return &Config{
		Dictionary:   filepath.Join(dir, "cedict.json"),
		CacheDir:     filepath.Join(dir, "cache"),
		HistoryDB:    filepath.Join(dir, "lookups.db"),
		PollInterval: 50,
		QueueSize:    64,
		Hotkey: Hotkey{
			Modifiers: []string{"ctrl", "alt"},
			Key:       "z",
		},
	}
}

// Load reads the configuration at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to path.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Dir returns the default configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "liveocr"), nil
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

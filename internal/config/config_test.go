package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := Default()
	if cfg.QueueSize != def.QueueSize || cfg.PollInterval != def.PollInterval {
		t.Errorf("missing file did not yield defaults: %+v", cfg)
	}
	if cfg.Hotkey.Key != "z" {
		t.Errorf("default hotkey = %+v", cfg.Hotkey)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.yaml")

	cfg := Default()
	cfg.Dictionary = "/data/cedict.json"
	cfg.QueueSize = 128
	cfg.OCR = OCR{Command: "rapidocr", Args: []string{"--json"}}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Dictionary != "/data/cedict.json" || got.QueueSize != 128 {
		t.Errorf("round trip = %+v", got)
	}
	if got.OCR.Command != "rapidocr" || len(got.OCR.Args) != 1 {
		t.Errorf("ocr config = %+v", got.OCR)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("dictionary: /only/this.json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Dictionary != "/only/this.json" {
		t.Errorf("dictionary = %q", got.Dictionary)
	}
	// Keys absent from the file keep their defaults.
	if got.QueueSize != Default().QueueSize {
		t.Errorf("queue size = %d, want default", got.QueueSize)
	}
}

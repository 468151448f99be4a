package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("listen: :9090\ntop_n: 8\nday_first: true\n"), 0644)

	c := Default()
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.Listen != ":9090" || c.TopN != 8 || !c.DayFirst {
		t.Errorf("unexpected config: %+v", c)
	}
	// Unset fields keep defaults.
	if c.File != "reservations.csv" || c.LogFormat != "text" {
		t.Errorf("defaults not preserved: %+v", c)
	}
}

func TestLoadFromFile_PartialDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("file: fall_export.xlsx\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.File != "fall_export.xlsx" {
		t.Errorf("File = %q", c.File)
	}
	if c.TopN != 12 || c.Listen != "127.0.0.1:8080" {
		t.Errorf("defaults not filled: %+v", c)
	}
}

func TestLoadFromFile_BadLogFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("log_format: xml\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for unknown log format")
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

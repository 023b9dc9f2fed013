package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tagforge/tagcloud/pkg/cloud"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Cloud.MinFontSize != cloud.MinFontSize || cfg.Cloud.MaxFontSize != cloud.MaxFontSize {
		t.Errorf("font range: got [%d, %d]", cfg.Cloud.MinFontSize, cfg.Cloud.MaxFontSize)
	}
	if cfg.Cloud.StylesheetURL == "" {
		t.Error("default stylesheet URL missing")
	}
	if cfg.Tokens.Separators == "" {
		t.Error("default separator set missing")
	}
	if cfg.CLI.DefaultCount <= 0 {
		t.Errorf("default count: got %d", cfg.CLI.DefaultCount)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Cloud.MinFontSize = 8
	cfg.Cloud.MaxFontSize = 60
	cfg.Tokens.Separators = " .,"
	cfg.Report.Enabled = true

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if loaded.Cloud.MinFontSize != 8 || loaded.Cloud.MaxFontSize != 60 {
		t.Errorf("font range: got [%d, %d]", loaded.Cloud.MinFontSize, loaded.Cloud.MaxFontSize)
	}
	wantSeps := " .,"
	if loaded.Tokens.Separators != wantSeps {
		t.Errorf("separators: got %q", loaded.Tokens.Separators)
	}
	if !loaded.Report.Enabled {
		t.Error("report.enabled did not round trip")
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Cloud.MaxFontSize != cloud.MaxFontSize {
		t.Errorf("created config differs from defaults: %+v", cfg.Cloud)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// Valid [cloud] section but a bad value later in the file.
	damaged := "[cloud]\nmin_font_size = 20\n\n[cli]\ndefault_count = \"not a number\"\n"
	if err := os.WriteFile(path, []byte(damaged), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	// The intact section is salvaged, the unparsable value falls back.
	if cfg.Cloud.MinFontSize != 20 {
		t.Errorf("min_font_size: got %d, want the salvaged 20", cfg.Cloud.MinFontSize)
	}
	if cfg.CLI.DefaultCount != DefaultConfig().CLI.DefaultCount {
		t.Errorf("default_count: got %d, want the default", cfg.CLI.DefaultCount)
	}
}

func TestScale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cloud.MinFontSize = 10
	cfg.Cloud.MaxFontSize = 20
	scale := cfg.Scale()
	if scale.Min != 10 || scale.Max != 20 {
		t.Errorf("Scale: got %+v", scale)
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"filmlens/internal/config"
)

func TestDefaultValidates(t *testing.T) {
	cfg := config.Default()
	// Default paths are tilde-relative, so run the normalize pass via Load
	// against a missing file path to exercise the full chain.
	loaded, _, exists, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load with missing file failed: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if loaded.Sources.MoviesFile != cfg.Sources.MoviesFile {
		t.Fatalf("defaults not applied: %#v", loaded.Sources)
	}
	if !filepath.IsAbs(loaded.Paths.DataDir) {
		t.Fatalf("expected expanded data dir, got %q", loaded.Paths.DataDir)
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
data_dir = "` + filepath.Join(dir, "data") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[sources]
dir = "` + filepath.Join(dir, "sources") + `"

[model]
ratio_ladder = [0.8, 2.0, 1.5]
seed = 7

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected file at %q to be found, got (%q, %v)", path, resolved, exists)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging section not applied: %#v", cfg.Logging)
	}
	if cfg.Model.Seed != 7 {
		t.Fatalf("model seed not applied: %d", cfg.Model.Seed)
	}
	// Ladder is re-sorted most-demanding first.
	if cfg.Model.RatioLadder[0] != 2.0 || cfg.Model.RatioLadder[len(cfg.Model.RatioLadder)-1] != 0.8 {
		t.Fatalf("ratio ladder not sorted descending: %v", cfg.Model.RatioLadder)
	}
	// Unset source names keep their defaults.
	if cfg.Sources.MoviesFile != "movies.csv" {
		t.Fatalf("expected default movies file, got %q", cfg.Sources.MoviesFile)
	}
}

func TestLoadRejectsBadLogFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for xml log format")
	} else if !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEnvOverridesDataDir(t *testing.T) {
	override := t.TempDir()
	t.Setenv("FILMLENS_DATA_DIR", override)

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Paths.DataDir != override {
		t.Fatalf("expected data dir %q, got %q", override, cfg.Paths.DataDir)
	}
	if cfg.DatabasePath() != filepath.Join(override, "film.db") {
		t.Fatalf("unexpected database path %q", cfg.DatabasePath())
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.WriteSample(path); err != nil {
		t.Fatalf("WriteSample failed: %v", err)
	}
	if err := config.WriteSample(path); err == nil {
		t.Fatal("expected refusal to overwrite existing config")
	}
}

func TestSourcePath(t *testing.T) {
	cfg := config.Default()
	cfg.Sources.Dir = "/srv/sources"
	if got := cfg.SourcePath("movies.csv"); got != filepath.Join("/srv/sources", "movies.csv") {
		t.Fatalf("SourcePath relative = %q", got)
	}
	if got := cfg.SourcePath("/abs/movies.csv"); got != "/abs/movies.csv" {
		t.Fatalf("SourcePath absolute = %q", got)
	}
}

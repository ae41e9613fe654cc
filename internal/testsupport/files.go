package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"filmlens/internal/config"
)

// WriteSource writes a CSV source file into the config's sources directory.
func WriteSource(t testing.TB, cfg *config.Config, name, content string) string {
	t.Helper()

	if err := os.MkdirAll(cfg.Sources.Dir, 0o755); err != nil {
		t.Fatalf("mkdir sources dir: %v", err)
	}
	path := filepath.Join(cfg.Sources.Dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source %s: %v", name, err)
	}
	return path
}

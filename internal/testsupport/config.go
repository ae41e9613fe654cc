package testsupport

import (
	"path/filepath"
	"testing"

	"filmlens/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Sources.Dir = filepath.Join(base, "sources")
	cfgVal.Model.ArtifactPath = filepath.Join(base, "model", "hit_predictor.json")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSeed overrides the classifier training seed on the test config.
func WithSeed(seed int64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Model.Seed = seed
	}
}

// WithRatioLadder overrides the label-derivation cutoffs on the test config.
func WithRatioLadder(ladder ...float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Model.RatioLadder = ladder
	}
}

// WithMinClassCount overrides the minimum per-class training count.
func WithMinClassCount(count int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Model.MinClassCount = count
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}

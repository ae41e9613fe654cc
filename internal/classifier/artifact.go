package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"filmlens/internal/services"
)

const artifactVersion = 1

// artifact is the on-disk JSON shape of a trained model. Everything needed
// to reproduce inference travels together: feature names, fitted scaler
// statistics, weights, and the cutoff the labels were derived with.
type artifact struct {
	Version     int                `json:"version"`
	Features    []string           `json:"features"`
	Means       []float64          `json:"means"`
	Stds        []float64          `json:"stds"`
	Weights     map[string]float64 `json:"weights"`
	Bias        float64            `json:"bias"`
	RatioCutoff float64            `json:"ratio_cutoff"`
	TrainedAt   time.Time          `json:"trained_at"`
}

// Save persists the model to path. The write goes through a temp file and
// rename so a crash never leaves a truncated artifact behind.
func (m *Model) Save(path string) error {
	bundle := artifact{
		Version:     artifactVersion,
		Features:    m.Scaler.Features,
		Means:       m.Scaler.Means,
		Stds:        m.Scaler.Stds,
		Weights:     m.Weights,
		Bias:        m.Bias,
		RatioCutoff: m.RatioCutoff,
		TrainedAt:   m.TrainedAt,
	}
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal model artifact: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create artifact directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp artifact: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename artifact: %w", err)
	}
	return nil
}

// LoadArtifact restores a trained model from path. The artifact is rejected
// when its version or feature layout does not match this build, since
// applying weights to the wrong columns would produce confident nonsense.
func LoadArtifact(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "classifier", "load artifact", "read artifact", err)
	}

	var bundle artifact
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, services.Wrap(services.ErrValidation, "classifier", "load artifact", "decode artifact", err)
	}
	if bundle.Version != artifactVersion {
		return nil, services.Wrap(services.ErrValidation, "classifier", "load artifact",
			fmt.Sprintf("artifact version %d, this build expects %d", bundle.Version, artifactVersion), nil)
	}

	scaler := &Scaler{Features: bundle.Features, Means: bundle.Means, Stds: bundle.Stds}
	if err := scaler.validate(featureNames()); err != nil {
		return nil, services.Wrap(services.ErrValidation, "classifier", "load artifact", "artifact incompatible", err)
	}
	for _, name := range featureNames() {
		if _, ok := bundle.Weights[name]; !ok {
			return nil, services.Wrap(services.ErrValidation, "classifier", "load artifact",
				fmt.Sprintf("artifact missing weight for %q", name), nil)
		}
	}

	return &Model{
		Weights:     bundle.Weights,
		Bias:        bundle.Bias,
		Scaler:      scaler,
		RatioCutoff: bundle.RatioCutoff,
		TrainedAt:   bundle.TrainedAt,
	}, nil
}

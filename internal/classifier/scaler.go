package classifier

import (
	"fmt"
	"math"
)

// Scaler standardizes feature vectors to zero mean and unit variance using
// statistics fitted once on the training set. The same fitted statistics are
// applied verbatim at inference time.
type Scaler struct {
	Features []string  `json:"features"`
	Means    []float64 `json:"means"`
	Stds     []float64 `json:"stds"`
}

// fitScaler computes per-column mean and standard deviation over the rows.
// A constant column gets a standard deviation of 1 so scaling stays defined.
func fitScaler(names []string, rows [][]float64) *Scaler {
	dims := len(names)
	means := make([]float64, dims)
	stds := make([]float64, dims)

	for _, row := range rows {
		for j := 0; j < dims; j++ {
			means[j] += row[j]
		}
	}
	n := float64(len(rows))
	for j := 0; j < dims; j++ {
		means[j] /= n
	}
	for _, row := range rows {
		for j := 0; j < dims; j++ {
			diff := row[j] - means[j]
			stds[j] += diff * diff
		}
	}
	for j := 0; j < dims; j++ {
		stds[j] = math.Sqrt(stds[j] / n)
		if stds[j] == 0 {
			stds[j] = 1
		}
	}

	return &Scaler{Features: append([]string(nil), names...), Means: means, Stds: stds}
}

// Transform standardizes one feature vector.
func (s *Scaler) Transform(vec []float64) ([]float64, error) {
	if len(vec) != len(s.Means) {
		return nil, fmt.Errorf("feature vector has %d values, scaler expects %d", len(vec), len(s.Means))
	}
	out := make([]float64, len(vec))
	for j := range vec {
		out[j] = (vec[j] - s.Means[j]) / s.Stds[j]
	}
	return out, nil
}

func (s *Scaler) validate(names []string) error {
	if len(s.Features) != len(names) || len(s.Means) != len(names) || len(s.Stds) != len(names) {
		return fmt.Errorf("scaler covers %d features, expected %d", len(s.Features), len(names))
	}
	for i, name := range names {
		if s.Features[i] != name {
			return fmt.Errorf("scaler feature %d is %q, expected %q", i, s.Features[i], name)
		}
		if s.Stds[i] <= 0 {
			return fmt.Errorf("scaler feature %q has non-positive std", name)
		}
	}
	return nil
}

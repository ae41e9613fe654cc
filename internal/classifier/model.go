package classifier

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"filmlens/internal/config"
	"filmlens/internal/services"
	"filmlens/internal/store"
)

// hitThreshold converts a predicted probability into a label. It is fixed
// and unrelated to the ratio cutoff used to derive training labels.
const hitThreshold = 0.5

// Model is a trained logistic regression over named features. A Model only
// exists in the trained state; Train and LoadArtifact are the two ways to
// obtain one.
type Model struct {
	Weights     map[string]float64
	Bias        float64
	Scaler      *Scaler
	RatioCutoff float64
	TrainedAt   time.Time
}

// TrainingSummary reports how a training run derived its labels and what it
// converged to.
type TrainingSummary struct {
	Rows         int     `json:"rows"`
	RatioCutoff  float64 `json:"ratio_cutoff"`
	Hits         int     `json:"hits"`
	Misses       int     `json:"misses"`
	Epochs       int     `json:"epochs"`
	LearningRate float64 `json:"learning_rate"`
}

// Prediction is one inference result.
type Prediction struct {
	Probability float64 `json:"probability"`
	Hit         bool    `json:"hit"`
}

// Train fits a hit classifier on every movie with budget, revenue, and a
// parsable release month. Labels come from the revenue-to-budget ratio via
// ChooseRatioCutoff; features are standardized before a seeded full-pass
// stochastic gradient descent. Fixed seed and config give identical weights
// on identical store content.
func Train(ctx context.Context, st *store.Store, cfg *config.Config) (*Model, *TrainingSummary, error) {
	rows, err := st.TrainingRows(ctx)
	if err != nil {
		return nil, nil, services.Wrap(services.ErrTrainingData, "classifier", "train", "load training rows", err)
	}

	ratios := make([]float64, len(rows))
	for i, row := range rows {
		ratios[i] = row.Revenue / row.Budget
	}

	cutoff, err := ChooseRatioCutoff(ratios, cfg.Model.RatioLadder, cfg.Model.MinClassCount)
	if err != nil {
		return nil, nil, err
	}

	features := make([][]float64, len(rows))
	labels := make([]float64, len(rows))
	hits := 0
	for i, row := range rows {
		features[i] = featureVector(row.Budget, row.Month)
		if ratios[i] > cutoff {
			labels[i] = 1
			hits++
		}
	}

	scaler := fitScaler(featureNames(), features)
	scaled := make([][]float64, len(features))
	for i, vec := range features {
		scaled[i], err = scaler.Transform(vec)
		if err != nil {
			return nil, nil, services.Wrap(services.ErrTrainingData, "classifier", "train", "scale features", err)
		}
	}

	weights, bias := fitLogistic(scaled, labels, cfg.Model)

	named := make(map[string]float64, len(weights))
	for i, name := range featureNames() {
		named[name] = weights[i]
	}

	model := &Model{
		Weights:     named,
		Bias:        bias,
		Scaler:      scaler,
		RatioCutoff: cutoff,
		TrainedAt:   time.Now().UTC(),
	}
	summary := &TrainingSummary{
		Rows:         len(rows),
		RatioCutoff:  cutoff,
		Hits:         hits,
		Misses:       len(rows) - hits,
		Epochs:       cfg.Model.Epochs,
		LearningRate: cfg.Model.LearningRate,
	}
	return model, summary, nil
}

// fitLogistic runs per-sample gradient descent over the scaled training set.
// Weights start at zero; the seed only drives the per-epoch visit order, so
// results are reproducible for a fixed seed.
func fitLogistic(features [][]float64, labels []float64, params config.Model) ([]float64, float64) {
	dims := len(featureNames())
	weights := make([]float64, dims)
	bias := 0.0

	rng := rand.New(rand.NewSource(params.Seed))
	order := make([]int, len(features))
	for i := range order {
		order[i] = i
	}

	for epoch := 0; epoch < params.Epochs; epoch++ {
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		for _, idx := range order {
			vec := features[idx]
			p := sigmoid(dot(weights, vec) + bias)
			grad := p - labels[idx]
			for j := 0; j < dims; j++ {
				weights[j] -= params.LearningRate * (grad*vec[j] + params.L2Penalty*weights[j])
			}
			bias -= params.LearningRate * grad
		}
	}
	return weights, bias
}

// Predict scores one movie. Budget must be positive and month within 1..12;
// anything else is rejected rather than clamped.
func (m *Model) Predict(budget float64, month int) (*Prediction, error) {
	if budget <= 0 {
		return nil, services.Wrap(services.ErrValidation, "classifier", "predict",
			fmt.Sprintf("budget must be positive, got %v", budget), nil)
	}
	if month < 1 || month > 12 {
		return nil, services.Wrap(services.ErrValidation, "classifier", "predict",
			fmt.Sprintf("month must be within 1..12, got %d", month), nil)
	}

	scaled, err := m.Scaler.Transform(featureVector(budget, month))
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "classifier", "predict", "scale features", err)
	}

	score := m.Bias
	for i, name := range featureNames() {
		score += m.Weights[name] * scaled[i]
	}
	p := sigmoid(score)
	return &Prediction{Probability: p, Hit: p >= hitThreshold}, nil
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

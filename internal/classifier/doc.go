// Package classifier trains and applies the hit predictor: a logistic
// regression over budget and release month.
//
// Training labels are derived, not stored. Each eligible movie's
// revenue-to-budget ratio is compared against a cutoff chosen by walking a
// descending ladder until both classes have enough examples; the chosen
// cutoff is persisted with the model so a loaded artifact is
// self-describing. Inference applies the fitted scaler and weights to
// validated inputs and labels at a fixed 0.5 probability threshold.
package classifier

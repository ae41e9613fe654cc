package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"filmlens/internal/classifier"
	"filmlens/internal/config"
	"filmlens/internal/store"
)

func newTrainCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Fit the hit classifier and persist the model artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				model, summary, err := classifier.Train(cmd.Context(), st, cfg)
				if err != nil {
					return err
				}
				if err := model.Save(cfg.Model.ArtifactPath); err != nil {
					return err
				}

				if ctx.jsonMode() {
					return writeJSON(cmd, struct {
						Summary  *classifier.TrainingSummary `json:"summary"`
						Weights  map[string]float64          `json:"weights"`
						Bias     float64                     `json:"bias"`
						Artifact string                      `json:"artifact"`
					}{summary, model.Weights, model.Bias, cfg.Model.ArtifactPath})
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Trained on %d movies (ratio cutoff %.2f: %d hits, %d misses)\n",
					summary.Rows, summary.RatioCutoff, summary.Hits, summary.Misses)
				fmt.Fprintf(out, "Epochs: %d, learning rate: %g\n", summary.Epochs, summary.LearningRate)
				for _, name := range []string{"budget", "release_month"} {
					fmt.Fprintf(out, "  weight %-14s %+.6f\n", name, model.Weights[name])
				}
				fmt.Fprintf(out, "  bias %+.6f\n", model.Bias)
				fmt.Fprintf(out, "Artifact written to %s\n", cfg.Model.ArtifactPath)
				return nil
			})
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"filmlens/internal/classifier"
)

func newPredictCommand(ctx *commandContext) *cobra.Command {
	var budget float64
	var month int

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Score a hypothetical movie with the trained hit classifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			model, err := classifier.LoadArtifact(cfg.Model.ArtifactPath)
			if err != nil {
				return fmt.Errorf("load model (run `filmlens train` first): %w", err)
			}

			prediction, err := model.Predict(budget, month)
			if err != nil {
				return err
			}

			if ctx.jsonMode() {
				return writeJSON(cmd, prediction)
			}

			out := cmd.OutOrStdout()
			verdict := "miss"
			if prediction.Hit {
				verdict = "hit"
			}
			fmt.Fprintf(out, "Probability of hit: %.4f\n", prediction.Probability)
			fmt.Fprintf(out, "Predicted outcome: %s (vs revenue > %.2fx budget during training)\n",
				verdict, model.RatioCutoff)
			return nil
		},
	}

	cmd.Flags().Float64Var(&budget, "budget", 0, "Production budget in source currency units")
	cmd.Flags().IntVar(&month, "month", 0, "Planned release month (1-12)")
	_ = cmd.MarkFlagRequired("budget")
	_ = cmd.MarkFlagRequired("month")
	return cmd
}

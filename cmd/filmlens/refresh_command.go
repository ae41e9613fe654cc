package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"filmlens/internal/config"
	"filmlens/internal/ingest"
	"filmlens/internal/logging"
	"filmlens/internal/store"
)

func newRefreshCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Ingest the configured CSV sources and rebuild the entity store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				logger, err := logging.NewFromConfig(cfg)
				if err != nil {
					return fmt.Errorf("initialize logging: %w", err)
				}

				report, err := ingest.Refresh(cmd.Context(), cfg, st, logger)
				if err != nil {
					return err
				}

				if ctx.jsonMode() {
					return writeJSON(cmd, report)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Run %s finished in %s\n", report.RunID, report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond))

				rows := make([][]string, 0, len(report.Sources))
				for _, src := range report.Sources {
					status := "loaded"
					if src.Missing {
						status = "missing"
					}
					rows = append(rows, []string{
						src.Name,
						status,
						formatCount(src.Loaded),
						formatCount(src.Rejected),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Source", "Status", "Loaded", "Rejected"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
				))

				for _, src := range report.Sources {
					for _, reason := range src.Reasons {
						fmt.Fprintf(out, "rejected %s: %s\n", src.Name, reason)
					}
				}
				if len(report.Unresolved) > 0 {
					fmt.Fprintln(out, "Unresolved countries (excluded from economy joins):")
					for _, entry := range report.Unresolved {
						fmt.Fprintf(out, "  %s (%d occurrences)\n", entry.Raw, entry.Count)
					}
				}
				return nil
			})
		},
	}
}

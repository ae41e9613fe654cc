package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"filmlens/internal/aggregate"
	"filmlens/internal/config"
	"filmlens/internal/store"
)

func newAggregateCommand(ctx *commandContext) *cobra.Command {
	aggregateCmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Derived analytics over the ingested store",
	}

	aggregateCmd.AddCommand(newAggregateGenresCommand(ctx))
	aggregateCmd.AddCommand(newAggregateMonthsCommand(ctx))
	aggregateCmd.AddCommand(newAggregateLanguagesCommand(ctx))
	aggregateCmd.AddCommand(newAggregateReachCommand(ctx))
	aggregateCmd.AddCommand(newAggregateEconomyCommand(ctx))
	aggregateCmd.AddCommand(newAggregateCountriesCommand(ctx))

	return aggregateCmd
}

func newAggregateGenresCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "Mean revenue per genre",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				rows, err := aggregate.MeanRevenueByGenre(cmd.Context(), st)
				if err != nil {
					return err
				}
				if ctx.jsonMode() {
					return writeJSON(cmd, rows)
				}

				tableRows := make([][]string, 0, len(rows))
				for _, row := range rows {
					tableRows = append(tableRows, []string{
						row.Genre,
						formatAmount(row.MeanRevenue),
						formatAmount(row.TotalRevenue),
						formatCount(row.Movies),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Genre", "Mean revenue", "Total revenue", "Movies"},
					tableRows,
					[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}
}

func newAggregateMonthsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "Mean revenue per release month",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				rows, err := aggregate.MeanRevenueByMonth(cmd.Context(), st)
				if err != nil {
					return err
				}
				if ctx.jsonMode() {
					return writeJSON(cmd, rows)
				}

				tableRows := make([][]string, 0, len(rows))
				for _, row := range rows {
					tableRows = append(tableRows, []string{
						formatCount(row.Month),
						row.Name,
						formatAmount(row.MeanRevenue),
						formatCount(row.Movies),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"#", "Month", "Mean revenue", "Movies"},
					tableRows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignRight},
				))
				return nil
			})
		},
	}
}

func newAggregateLanguagesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "Total revenue per movie language",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				rows, err := aggregate.TotalRevenueByLanguage(cmd.Context(), st)
				if err != nil {
					return err
				}
				if ctx.jsonMode() {
					return writeJSON(cmd, rows)
				}

				tableRows := make([][]string, 0, len(rows))
				for _, row := range rows {
					tableRows = append(tableRows, []string{
						row.Code,
						row.Name,
						formatAmount(row.TotalRevenue),
						formatCount(row.Movies),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Code", "Language", "Total revenue", "Movies"},
					tableRows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
				))
				return nil
			})
		},
	}
}

func newAggregateReachCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reach",
		Short: "Revenue per million speakers per language",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				rows, err := aggregate.RevenuePerMillionSpeakers(cmd.Context(), st)
				if err != nil {
					return err
				}
				if ctx.jsonMode() {
					return writeJSON(cmd, rows)
				}

				tableRows := make([][]string, 0, len(rows))
				for _, row := range rows {
					tableRows = append(tableRows, []string{
						row.Code,
						row.Name,
						formatAmount(row.TotalRevenue),
						formatInt64(row.Population),
						formatMetric(row.PerMillion),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Code", "Language", "Total revenue", "Speakers", "Revenue / 1M speakers"},
					tableRows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}
}

func newAggregateEconomyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "economy",
		Short: "World-bank rollup per language over reconciled market countries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				rows, err := aggregate.LanguageEconomy(cmd.Context(), st)
				if err != nil {
					return err
				}
				if ctx.jsonMode() {
					return writeJSON(cmd, rows)
				}

				tableRows := make([][]string, 0, len(rows))
				for _, row := range rows {
					tableRows = append(tableRows, []string{
						row.Code,
						row.Name,
						formatInt64(row.Population),
						formatAmount(row.MeanGDP),
						formatCount(row.Countries),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Code", "Language", "Speakers", "Mean GDP", "Countries"},
					tableRows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}
}

func newAggregateCountriesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "GDP versus population per country",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				rows, err := aggregate.CountryEconomies(cmd.Context(), st)
				if err != nil {
					return err
				}
				if ctx.jsonMode() {
					return writeJSON(cmd, rows)
				}

				tableRows := make([][]string, 0, len(rows))
				for _, row := range rows {
					tableRows = append(tableRows, []string{
						row.Code,
						row.Name,
						formatMetric(row.GDP),
						formatMetric(row.Population),
						formatMetric(row.GDPPerCapita),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Code", "Country", "GDP", "Population", "GDP per capita"},
					tableRows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}
}

package aggregate

import (
	"context"
	"fmt"
	"time"

	"filmlens/internal/identity"
	"filmlens/internal/store"
)

// GenreRevenue is the revenue rollup for one genre label. A movie tagged with
// several genres contributes to each of them.
type GenreRevenue struct {
	Genre        string  `json:"genre"`
	MeanRevenue  float64 `json:"mean_revenue"`
	TotalRevenue float64 `json:"total_revenue"`
	Movies       int     `json:"movies"`
}

// MonthRevenue is the revenue rollup for one calendar release month.
type MonthRevenue struct {
	Month       int     `json:"month"`
	Name        string  `json:"name"`
	MeanRevenue float64 `json:"mean_revenue"`
	Movies      int     `json:"movies"`
}

// LanguageRevenue sums revenue over the movie's own language field.
type LanguageRevenue struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	TotalRevenue float64 `json:"total_revenue"`
	Movies       int     `json:"movies"`
}

// LanguageReach relates a language's movie revenue to its worldwide speaker
// population. PerMillion is revenue per million speakers; it is not
// computable for a language with no market rows or a zero population.
type LanguageReach struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	TotalRevenue float64 `json:"total_revenue"`
	Population   int64   `json:"population"`
	Countries    int     `json:"countries"`
	PerMillion   Metric  `json:"revenue_per_million_speakers"`
}

// LanguageGDP is the world-bank rollup for one language over its reconciled
// market countries.
type LanguageGDP struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Population int64   `json:"population"`
	MeanGDP    float64 `json:"mean_gdp"`
	Countries  int     `json:"countries"`
}

// CountryEconomy is one country's indicators prepared for presentation.
type CountryEconomy struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	GDP          Metric `json:"gdp"`
	Population   Metric `json:"population"`
	GDPPerCapita Metric `json:"gdp_per_capita"`
}

// MeanRevenueByGenre returns mean and total revenue per genre, ordered by
// genre label. Movies without a reported revenue are excluded.
func MeanRevenueByGenre(ctx context.Context, st *store.Store) ([]GenreRevenue, error) {
	stats, err := st.MeanRevenueByGenre(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]GenreRevenue, 0, len(stats))
	for _, stat := range stats {
		out = append(out, GenreRevenue{
			Genre:        stat.Key,
			MeanRevenue:  stat.Mean,
			TotalRevenue: stat.Total,
			Movies:       stat.Count,
		})
	}
	return out, nil
}

// MeanRevenueByMonth returns mean revenue per release month 1..12. Months
// with no releases are absent rather than reported as zero; movies with a
// missing or unparsable date do not appear in any month.
func MeanRevenueByMonth(ctx context.Context, st *store.Store) ([]MonthRevenue, error) {
	stats, err := st.MeanRevenueByMonth(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MonthRevenue, 0, len(stats))
	for _, stat := range stats {
		if stat.Month < 1 || stat.Month > 12 {
			return nil, fmt.Errorf("month %d out of range in store", stat.Month)
		}
		out = append(out, MonthRevenue{
			Month:       stat.Month,
			Name:        time.Month(stat.Month).String(),
			MeanRevenue: stat.Mean,
			Movies:      stat.Count,
		})
	}
	return out, nil
}

// TotalRevenueByLanguage sums revenue grouped by the movie's own language
// field. This intentionally does not touch the language-market table; the
// movie's language and the market set are distinct concepts.
func TotalRevenueByLanguage(ctx context.Context, st *store.Store) ([]LanguageRevenue, error) {
	stats, err := st.TotalRevenueByLanguage(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LanguageRevenue, 0, len(stats))
	for _, stat := range stats {
		out = append(out, LanguageRevenue{
			Code:         stat.Key,
			Name:         identity.LanguageDisplayName(stat.Key),
			TotalRevenue: stat.Total,
			Movies:       stat.Count,
		})
	}
	return out, nil
}

// RevenuePerMillionSpeakers divides each language's total movie revenue by
// its speaker population in millions. Languages absent from the market data
// or with a zero recorded population yield a NotComputable metric.
func RevenuePerMillionSpeakers(ctx context.Context, st *store.Store) ([]LanguageReach, error) {
	revenues, err := st.TotalRevenueByLanguage(ctx)
	if err != nil {
		return nil, err
	}
	speakers, err := st.LanguageSpeakers(ctx)
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]store.SpeakerStat, len(speakers))
	for _, stat := range speakers {
		byCode[stat.LanguageCode] = stat
	}

	out := make([]LanguageReach, 0, len(revenues))
	for _, rev := range revenues {
		reach := LanguageReach{
			Code:         rev.Key,
			Name:         identity.LanguageDisplayName(rev.Key),
			TotalRevenue: rev.Total,
		}
		speaker, ok := byCode[rev.Key]
		switch {
		case !ok:
			reach.PerMillion = NotComputable("no market data for language")
		case speaker.Population <= 0:
			reach.PerMillion = NotComputable("speaker population is zero")
		default:
			reach.Population = speaker.Population
			reach.Countries = speaker.Countries
			reach.PerMillion = Computable(rev.Total / (float64(speaker.Population) / 1e6))
		}
		out = append(out, reach)
	}
	return out, nil
}

// LanguageEconomy rolls up world-bank indicators per language over market
// rows whose country resolved to a canonical code. Unresolved countries are
// simply absent from the rollup.
func LanguageEconomy(ctx context.Context, st *store.Store) ([]LanguageGDP, error) {
	stats, err := st.LanguageEconomy(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LanguageGDP, 0, len(stats))
	for _, stat := range stats {
		name := stat.Language
		if name == "" {
			name = identity.LanguageDisplayName(stat.LanguageCode)
		}
		out = append(out, LanguageGDP{
			Code:       stat.LanguageCode,
			Name:       name,
			Population: stat.Population,
			MeanGDP:    stat.MeanGDP,
			Countries:  stat.Countries,
		})
	}
	return out, nil
}

// CountryEconomies prepares GDP versus population rows per country. A country
// missing either indicator keeps an invalid metric for it; GDP per capita
// requires both and a nonzero population.
func CountryEconomies(ctx context.Context, st *store.Store) ([]CountryEconomy, error) {
	rows, err := st.CountryEconomies(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CountryEconomy, 0, len(rows))
	for _, row := range rows {
		economy := CountryEconomy{
			Code: row.ISOCode,
			Name: identity.CountryDisplayName(row.ISOCode),
		}
		if row.GDP != nil {
			economy.GDP = Computable(*row.GDP)
		} else {
			economy.GDP = NotComputable("gdp not reported")
		}
		if row.Population != nil {
			economy.Population = Computable(float64(*row.Population))
		} else {
			economy.Population = NotComputable("population not reported")
		}
		switch {
		case row.GDP == nil:
			economy.GDPPerCapita = NotComputable("gdp not reported")
		case row.Population == nil:
			economy.GDPPerCapita = NotComputable("population not reported")
		case *row.Population == 0:
			economy.GDPPerCapita = NotComputable("population is zero")
		default:
			economy.GDPPerCapita = Computable(*row.GDP / float64(*row.Population))
		}
		out = append(out, economy)
	}
	return out, nil
}

// ReachBreakdown collapses reach rows into a label-keyed metric map.
func ReachBreakdown(rows []LanguageReach) Breakdown {
	out := make(Breakdown, len(rows))
	for _, row := range rows {
		out[row.Name] = row.PerMillion
	}
	return out
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// MovieCount returns the number of movies in the store.
func (s *Store) MovieCount(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return count, nil
}

// GetMovie fetches a movie by identifier. Returns nil when absent.
func (s *Store) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT movie_id, title, release_date, budget, revenue, language FROM movies WHERE movie_id = ?`, id)

	var (
		movie   Movie
		release sql.NullString
		budget  sql.NullFloat64
		revenue sql.NullFloat64
		lang    sql.NullString
	)
	err := row.Scan(&movie.ID, &movie.Title, &release, &budget, &revenue, &lang)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	movie.ReleaseDate = release.String
	if budget.Valid {
		movie.Budget = &budget.Float64
	}
	if revenue.Valid {
		movie.Revenue = &revenue.Float64
	}
	movie.Language = lang.String
	return &movie, nil
}

// MovieGenres returns the genre labels associated with a movie.
func (s *Store) MovieGenres(ctx context.Context, id int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT genre FROM genres WHERE movie_id = ? ORDER BY genre`, id)
	if err != nil {
		return nil, fmt.Errorf("query movie genres: %w", err)
	}
	defer rows.Close()

	var genres []string
	for rows.Next() {
		var genre string
		if err := rows.Scan(&genre); err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	return genres, rows.Err()
}

// MeanRevenueByGenre aggregates mean revenue per genre label over movies with
// a reported revenue. A movie carrying N genres contributes to N groups.
func (s *Store) MeanRevenueByGenre(ctx context.Context) ([]GroupStat, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT g.genre, AVG(m.revenue), SUM(m.revenue), COUNT(*)
        FROM genres g
        JOIN movies m ON m.movie_id = g.movie_id
        WHERE m.revenue IS NOT NULL
        GROUP BY g.genre
        ORDER BY g.genre`)
	if err != nil {
		return nil, fmt.Errorf("query revenue by genre: %w", err)
	}
	defer rows.Close()
	return scanGroupStats(rows)
}

// MeanRevenueByMonth aggregates mean revenue per release month. Movies with a
// missing or unparsable release date are excluded.
func (s *Store) MeanRevenueByMonth(ctx context.Context) ([]MonthStat, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT CAST(strftime('%m', release_date) AS INTEGER) AS month, AVG(revenue), COUNT(*)
        FROM movies
        WHERE revenue IS NOT NULL
          AND release_date IS NOT NULL
          AND strftime('%m', release_date) IS NOT NULL
        GROUP BY month
        ORDER BY month`)
	if err != nil {
		return nil, fmt.Errorf("query revenue by month: %w", err)
	}
	defer rows.Close()

	var stats []MonthStat
	for rows.Next() {
		var stat MonthStat
		if err := rows.Scan(&stat.Month, &stat.Mean, &stat.Count); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}

// TotalRevenueByLanguage sums revenue grouped by the movie's own language
// field. This is intentionally not joined to language_market; the two
// "language" concepts are distinct.
func (s *Store) TotalRevenueByLanguage(ctx context.Context) ([]GroupStat, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT language, AVG(revenue), SUM(revenue), COUNT(*)
        FROM movies
        WHERE revenue IS NOT NULL AND language IS NOT NULL
        GROUP BY language
        ORDER BY language`)
	if err != nil {
		return nil, fmt.Errorf("query revenue by language: %w", err)
	}
	defer rows.Close()
	return scanGroupStats(rows)
}

// LanguageSpeakers rolls up speaker population per language across all market
// rows, resolved or not. Economy joins use LanguageEconomy instead.
func (s *Store) LanguageSpeakers(ctx context.Context) ([]SpeakerStat, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT language_code, MAX(language), SUM(population), COUNT(DISTINCT country)
        FROM language_market
        GROUP BY language_code
        ORDER BY language_code`)
	if err != nil {
		return nil, fmt.Errorf("query language speakers: %w", err)
	}
	defer rows.Close()

	var stats []SpeakerStat
	for rows.Next() {
		var stat SpeakerStat
		if err := rows.Scan(&stat.LanguageCode, &stat.Language, &stat.Population, &stat.Countries); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}

// LanguageEconomy joins market rows to world-bank data through the reconciled
// country code. Rows with an unresolved country are excluded by the
// country_code filter, never coerced to zero.
func (s *Store) LanguageEconomy(ctx context.Context) ([]EconomyStat, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT lm.language_code, MAX(lm.language), SUM(lm.population), AVG(w.gdp), COUNT(DISTINCT lm.country_code)
        FROM language_market lm
        JOIN world_bank_data w ON w.iso_code = lm.country_code
        WHERE lm.country_code IS NOT NULL AND w.gdp IS NOT NULL
        GROUP BY lm.language_code
        ORDER BY lm.language_code`)
	if err != nil {
		return nil, fmt.Errorf("query language economy: %w", err)
	}
	defer rows.Close()

	var stats []EconomyStat
	for rows.Next() {
		var stat EconomyStat
		if err := rows.Scan(&stat.LanguageCode, &stat.Language, &stat.Population, &stat.MeanGDP, &stat.Countries); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}

// CountryEconomies returns the world-bank rows ordered by country code.
func (s *Store) CountryEconomies(ctx context.Context) ([]EconomyRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT iso_code, gdp, population_gdp FROM world_bank_data ORDER BY iso_code`)
	if err != nil {
		return nil, fmt.Errorf("query country economies: %w", err)
	}
	defer rows.Close()

	var economies []EconomyRow
	for rows.Next() {
		var (
			row        EconomyRow
			gdp        sql.NullFloat64
			population sql.NullInt64
		)
		if err := rows.Scan(&row.ISOCode, &gdp, &population); err != nil {
			return nil, err
		}
		if gdp.Valid {
			row.GDP = &gdp.Float64
		}
		if population.Valid {
			row.Population = &population.Int64
		}
		economies = append(economies, row)
	}
	return economies, rows.Err()
}

// TrainingRows returns movies with budget, revenue, and a parsable release
// month all present. Movies missing any of the three are excluded so ratio
// features never divide by missing data.
func (s *Store) TrainingRows(ctx context.Context) ([]TrainingRow, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT budget, revenue, CAST(strftime('%m', release_date) AS INTEGER)
        FROM movies
        WHERE budget IS NOT NULL AND budget > 0
          AND revenue IS NOT NULL
          AND release_date IS NOT NULL
          AND strftime('%m', release_date) IS NOT NULL
        ORDER BY movie_id`)
	if err != nil {
		return nil, fmt.Errorf("query training rows: %w", err)
	}
	defer rows.Close()

	var training []TrainingRow
	for rows.Next() {
		var row TrainingRow
		if err := rows.Scan(&row.Budget, &row.Revenue, &row.Month); err != nil {
			return nil, err
		}
		training = append(training, row)
	}
	return training, rows.Err()
}

func scanGroupStats(rows *sql.Rows) ([]GroupStat, error) {
	var stats []GroupStat
	for rows.Next() {
		var stat GroupStat
		if err := rows.Scan(&stat.Key, &stat.Mean, &stat.Total, &stat.Count); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}

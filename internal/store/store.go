package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"filmlens/internal/config"
)

// Store manages the film entity database backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the entity store and verifies its schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// ReplaceAll swaps the entire store content for the provided snapshot in one
// transaction. Re-running with the same snapshot yields identical content, so
// a refresh is idempotent; readers never observe a partially-loaded store.
func (s *Store) ReplaceAll(ctx context.Context, snap *Snapshot) error {
	if snap == nil {
		return fmt.Errorf("snapshot is nil")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin refresh tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Associations first so the movie FK cascade never fires mid-load.
	for _, table := range []string{"genres", "cast_members", "movies", "language_market", "world_bank_data"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	movieStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO movies (movie_id, title, release_date, budget, revenue, language) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare movies insert: %w", err)
	}
	defer movieStmt.Close()
	for _, movie := range snap.Movies {
		if _, err := movieStmt.ExecContext(ctx,
			movie.ID,
			movie.Title,
			nullableString(movie.ReleaseDate),
			nullableFloat(movie.Budget),
			nullableFloat(movie.Revenue),
			nullableString(movie.Language),
		); err != nil {
			return fmt.Errorf("insert movie %d: %w", movie.ID, err)
		}
	}

	genreStmt, err := tx.PrepareContext(ctx, `INSERT INTO genres (movie_id, genre) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare genres insert: %w", err)
	}
	defer genreStmt.Close()
	for _, tag := range snap.Genres {
		if _, err := genreStmt.ExecContext(ctx, tag.MovieID, tag.Genre); err != nil {
			return fmt.Errorf("insert genre %q for movie %d: %w", tag.Genre, tag.MovieID, err)
		}
	}

	castStmt, err := tx.PrepareContext(ctx, `INSERT INTO cast_members (movie_id, actor) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare cast insert: %w", err)
	}
	defer castStmt.Close()
	for _, credit := range snap.Cast {
		if _, err := castStmt.ExecContext(ctx, credit.MovieID, credit.Actor); err != nil {
			return fmt.Errorf("insert cast %q for movie %d: %w", credit.Actor, credit.MovieID, err)
		}
	}

	marketStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO language_market (language_code, language, country, country_code, population) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare market insert: %w", err)
	}
	defer marketStmt.Close()
	for _, row := range snap.Markets {
		if _, err := marketStmt.ExecContext(ctx,
			row.LanguageCode,
			row.Language,
			row.Country,
			nullableString(row.CountryCode),
			row.Population,
		); err != nil {
			return fmt.Errorf("insert market row %s/%s: %w", row.LanguageCode, row.Country, err)
		}
	}

	economyStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO world_bank_data (iso_code, gdp, population_gdp) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare economy insert: %w", err)
	}
	defer economyStmt.Close()
	for _, row := range snap.Economies {
		if _, err := economyStmt.ExecContext(ctx,
			row.ISOCode,
			nullableFloat(row.GDP),
			nullableInt(row.Population),
		); err != nil {
			return fmt.Errorf("insert economy row %s: %w", row.ISOCode, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit refresh: %w", err)
	}
	return nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableFloat(value *float64) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableInt(value *int64) any {
	if value == nil {
		return nil
	}
	return *value
}

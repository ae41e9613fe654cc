package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"filmlens/internal/config"
	"filmlens/internal/identity"
	"filmlens/internal/logging"
	"filmlens/internal/services"
	"filmlens/internal/store"
)

const (
	sourceMovies    = "movies"
	sourceGenres    = "genres"
	sourceCast      = "cast"
	sourceMarkets   = "language_market"
	sourceEconomies = "world_bank_data"
)

// Refresh runs one full pipeline pass: read every configured source, validate
// and reconcile rows, and replace the store content with the result in a
// single transaction. Running it twice over unchanged sources yields an
// identical store. The caller is expected to have created the data
// directories (config.EnsureDirectories).
//
// A file lock next to the database serializes refreshes; a second concurrent
// call fails fast instead of queueing.
func Refresh(ctx context.Context, cfg *config.Config, st *store.Store, logger *slog.Logger) (*Report, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	lock := flock.New(cfg.DatabasePath() + ".refresh.lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "ingest", "refresh", "acquire refresh lock", err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrConfiguration, "ingest", "refresh", "another refresh is already running", nil)
	}
	defer func() { _ = lock.Unlock() }()

	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	ctx = services.WithComponent(ctx, "ingest")
	log := logging.WithContext(ctx, logger)

	report := &Report{RunID: runID, StartedAt: time.Now().UTC()}
	resolver := identity.NewResolver()
	snap := &store.Snapshot{}

	if err := loadSources(cfg, resolver, snap, report, log); err != nil {
		return nil, err
	}

	if err := st.ReplaceAll(ctx, snap); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "ingest", "refresh", "replace store content", err)
	}

	report.Unresolved = resolver.Report()
	report.FinishedAt = time.Now().UTC()

	log.Info("refresh complete",
		logging.Int("loaded", report.TotalLoaded()),
		logging.Int("rejected", report.TotalRejected()),
		logging.Int("unresolved", len(report.Unresolved)),
		logging.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)))
	return report, nil
}

func loadSources(cfg *config.Config, resolver *identity.Resolver, snap *store.Snapshot, report *Report, log *slog.Logger) error {
	movieIDs := make(map[int64]struct{})

	moviesReport, ok, err := loadOne(cfg, sourceMovies, cfg.Sources.MoviesFile, report, log, func(path string, sr *SourceReport) error {
		movies, ids, err := readMovies(path, resolver, sr)
		if err != nil {
			return err
		}
		snap.Movies = movies
		movieIDs = ids
		return nil
	})
	if err != nil {
		return err
	}
	if !ok {
		// Without movies the association files have nothing to reference.
		// They are marked missing rather than producing a rejection per row.
		log.Warn("movies source absent, skipping dependent sources",
			logging.String(logging.FieldSource, sourceMovies),
			logging.String("file", moviesReport.File))
		report.Sources = append(report.Sources,
			SourceReport{Name: sourceGenres, File: cfg.SourcePath(cfg.Sources.GenresFile), Missing: true},
			SourceReport{Name: sourceCast, File: cfg.SourcePath(cfg.Sources.CastFile), Missing: true},
		)
	} else {
		if _, _, err := loadOne(cfg, sourceGenres, cfg.Sources.GenresFile, report, log, func(path string, sr *SourceReport) error {
			pairs, err := readAssociations(path, "genre", movieIDs, sr)
			if err != nil {
				return err
			}
			for _, pair := range pairs {
				snap.Genres = append(snap.Genres, store.GenreTag{MovieID: pair.MovieID, Genre: pair.Value})
			}
			return nil
		}); err != nil {
			return err
		}
		if _, _, err := loadOne(cfg, sourceCast, cfg.Sources.CastFile, report, log, func(path string, sr *SourceReport) error {
			pairs, err := readAssociations(path, "actor", movieIDs, sr)
			if err != nil {
				return err
			}
			for _, pair := range pairs {
				snap.Cast = append(snap.Cast, store.CastCredit{MovieID: pair.MovieID, Actor: pair.Value})
			}
			return nil
		}); err != nil {
			return err
		}
	}

	if _, _, err := loadOne(cfg, sourceMarkets, cfg.Sources.LanguageMarketFile, report, log, func(path string, sr *SourceReport) error {
		markets, err := readMarkets(path, resolver, sr)
		if err != nil {
			return err
		}
		snap.Markets = markets
		return nil
	}); err != nil {
		return err
	}
	if _, _, err := loadOne(cfg, sourceEconomies, cfg.Sources.WorldBankFile, report, log, func(path string, sr *SourceReport) error {
		economies, err := readEconomies(path, sr)
		if err != nil {
			return err
		}
		snap.Economies = economies
		return nil
	}); err != nil {
		return err
	}

	return nil
}

// loadOne runs a single source reader with missing-file tolerance. A missing
// file is recorded and skipped; an unreadable or structurally broken file
// (bad header) aborts the refresh, since the snapshot would silently lose a
// whole table otherwise.
func loadOne(cfg *config.Config, name, file string, report *Report, log *slog.Logger, read func(path string, sr *SourceReport) error) (SourceReport, bool, error) {
	path := cfg.SourcePath(file)
	sr := SourceReport{Name: name, File: path}

	err := read(path, &sr)
	switch {
	case err == nil:
		log.Info("source loaded",
			logging.String(logging.FieldSource, name),
			logging.Int("loaded", sr.Loaded),
			logging.Int("rejected", sr.Rejected))
		report.Sources = append(report.Sources, sr)
		return sr, true, nil
	case sourceMissing(err):
		sr.Missing = true
		log.Warn("source file missing",
			logging.String(logging.FieldSource, name),
			logging.String("file", path))
		report.Sources = append(report.Sources, sr)
		return sr, false, nil
	default:
		return sr, false, services.Wrap(services.ErrMalformedRecord, "ingest", name, "unreadable source", err)
	}
}

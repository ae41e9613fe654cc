package ingest

import (
	"context"
	"errors"
	"testing"

	"filmlens/internal/config"
	"filmlens/internal/logging"
	"filmlens/internal/services"
	"filmlens/internal/testsupport"
)

const (
	moviesCSV = `movie_id,title,release_date,budget,revenue,language
1,First Light,2019-07-12,1000000,50000000,en
2,Night Shift,2019-07-20,2000000,30000000,en
3,Quiet Garden,2020-01-05,500000,400000,ko
4,No Numbers,,,,fr
`
	genresCSV = `movie_id,genre
1,Drama
1,Thriller
2,Drama
3,Romance
`
	castCSV = `movie_id,actor
1,Ada Calder
2,Rhys Monroe
`
	marketsCSV = `country,capital,language_code,language,population
United States,Washington,en,English,331000000
South Korea,Seoul,ko,Korean,51000000
Atlantis,Poseidonis,en,English,1000
`
	economiesCSV = `iso_code,gdp,population_gdp
USA,25000000000000,331000000
KOR,1800000000000,51000000
`
)

func writeAllSources(t *testing.T, cfg *config.Config) {
	t.Helper()
	testsupport.WriteSource(t, cfg, cfg.Sources.MoviesFile, moviesCSV)
	testsupport.WriteSource(t, cfg, cfg.Sources.GenresFile, genresCSV)
	testsupport.WriteSource(t, cfg, cfg.Sources.CastFile, castCSV)
	testsupport.WriteSource(t, cfg, cfg.Sources.LanguageMarketFile, marketsCSV)
	testsupport.WriteSource(t, cfg, cfg.Sources.WorldBankFile, economiesCSV)
}

func sourceByName(t *testing.T, report *Report, name string) SourceReport {
	t.Helper()
	for _, src := range report.Sources {
		if src.Name == name {
			return src
		}
	}
	t.Fatalf("report has no source %q", name)
	return SourceReport{}
}

func TestRefreshLoadsAllSources(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	writeAllSources(t, cfg)

	report, err := Refresh(context.Background(), cfg, st, logging.NewNop())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if report.RunID == "" {
		t.Fatal("expected non-empty run ID")
	}

	wantLoaded := map[string]int{
		sourceMovies:    4,
		sourceGenres:    4,
		sourceCast:      2,
		sourceMarkets:   3,
		sourceEconomies: 2,
	}
	for name, want := range wantLoaded {
		src := sourceByName(t, report, name)
		if src.Loaded != want {
			t.Errorf("source %s: loaded %d, want %d", name, src.Loaded, want)
		}
		if src.Rejected != 0 {
			t.Errorf("source %s: rejected %d rows: %v", name, src.Rejected, src.Reasons)
		}
	}

	count, err := st.MovieCount(context.Background())
	if err != nil {
		t.Fatalf("MovieCount: %v", err)
	}
	if count != 4 {
		t.Fatalf("movie count = %d, want 4", count)
	}

	if len(report.Unresolved) != 1 || report.Unresolved[0].Raw != "atlantis" {
		t.Fatalf("unresolved = %+v, want one entry for atlantis", report.Unresolved)
	}
}

func TestRefreshIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	writeAllSources(t, cfg)

	first, err := Refresh(context.Background(), cfg, st, logging.NewNop())
	if err != nil {
		t.Fatalf("first Refresh: %v", err)
	}
	second, err := Refresh(context.Background(), cfg, st, logging.NewNop())
	if err != nil {
		t.Fatalf("second Refresh: %v", err)
	}

	if first.TotalLoaded() != second.TotalLoaded() {
		t.Fatalf("loaded totals differ between runs: %d vs %d", first.TotalLoaded(), second.TotalLoaded())
	}
	count, err := st.MovieCount(context.Background())
	if err != nil {
		t.Fatalf("MovieCount: %v", err)
	}
	if count != 4 {
		t.Fatalf("movie count after second refresh = %d, want 4", count)
	}
	genres, err := st.MovieGenres(context.Background(), 1)
	if err != nil {
		t.Fatalf("MovieGenres: %v", err)
	}
	if len(genres) != 2 {
		t.Fatalf("movie 1 has %d genres after second refresh, want 2", len(genres))
	}
}

func TestRefreshRejectsMalformedMovieRows(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	broken := `movie_id,title,release_date,budget,revenue,language
1,First Light,2019-07-12,1000000,50000000,en
abc,Bad ID,2019-01-01,100,200,en
2,,2019-01-01,100,200,en
3,Negative Budget,2019-01-01,-5,200,en
1,Duplicate,2019-01-01,100,200,en
`
	testsupport.WriteSource(t, cfg, cfg.Sources.MoviesFile, broken)

	report, err := Refresh(context.Background(), cfg, st, logging.NewNop())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	src := sourceByName(t, report, sourceMovies)
	if src.Loaded != 1 {
		t.Errorf("loaded = %d, want 1", src.Loaded)
	}
	if src.Rejected != 4 {
		t.Errorf("rejected = %d, want 4 (reasons: %v)", src.Rejected, src.Reasons)
	}
	if len(src.Reasons) != 4 {
		t.Errorf("reason samples = %d, want 4", len(src.Reasons))
	}

	count, err := st.MovieCount(context.Background())
	if err != nil {
		t.Fatalf("MovieCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("movie count = %d, want 1", count)
	}
}

func TestRefreshTreatsUnparsableDateAsMissing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	testsupport.WriteSource(t, cfg, cfg.Sources.MoviesFile,
		"movie_id,title,release_date,budget,revenue,language\n7,Odd Date,not-a-date,100,200,en\n")

	report, err := Refresh(context.Background(), cfg, st, logging.NewNop())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if src := sourceByName(t, report, sourceMovies); src.Loaded != 1 || src.Rejected != 0 {
		t.Fatalf("movies loaded=%d rejected=%d, want 1/0", src.Loaded, src.Rejected)
	}

	movie, err := st.GetMovie(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetMovie: %v", err)
	}
	if movie == nil {
		t.Fatal("movie 7 not stored")
	}
	if movie.ReleaseDate != "" {
		t.Fatalf("release date = %q, want empty", movie.ReleaseDate)
	}
}

func TestRefreshRejectsDanglingAssociations(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	testsupport.WriteSource(t, cfg, cfg.Sources.MoviesFile,
		"movie_id,title,release_date,budget,revenue,language\n1,First Light,2019-07-12,1000000,50000000,en\n")
	testsupport.WriteSource(t, cfg, cfg.Sources.GenresFile,
		"movie_id,genre\n1,Drama\n99,Mystery\n")

	report, err := Refresh(context.Background(), cfg, st, logging.NewNop())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	src := sourceByName(t, report, sourceGenres)
	if src.Loaded != 1 || src.Rejected != 1 {
		t.Fatalf("genres loaded=%d rejected=%d, want 1/1 (reasons: %v)", src.Loaded, src.Rejected, src.Reasons)
	}
}

func TestRefreshSkipsMissingSource(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	testsupport.WriteSource(t, cfg, cfg.Sources.MoviesFile, moviesCSV)
	testsupport.WriteSource(t, cfg, cfg.Sources.GenresFile, genresCSV)
	testsupport.WriteSource(t, cfg, cfg.Sources.CastFile, castCSV)
	testsupport.WriteSource(t, cfg, cfg.Sources.LanguageMarketFile, marketsCSV)

	report, err := Refresh(context.Background(), cfg, st, logging.NewNop())
	if err != nil {
		t.Fatalf("Refresh without world bank data: %v", err)
	}

	src := sourceByName(t, report, sourceEconomies)
	if !src.Missing {
		t.Fatal("expected world bank source to be marked missing")
	}
	economies, err := st.CountryEconomies(context.Background())
	if err != nil {
		t.Fatalf("CountryEconomies: %v", err)
	}
	if len(economies) != 0 {
		t.Fatalf("expected no economy rows, got %d", len(economies))
	}
}

func TestRefreshWithoutMoviesSkipsAssociations(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	testsupport.WriteSource(t, cfg, cfg.Sources.LanguageMarketFile, marketsCSV)
	testsupport.WriteSource(t, cfg, cfg.Sources.WorldBankFile, economiesCSV)

	report, err := Refresh(context.Background(), cfg, st, logging.NewNop())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	for _, name := range []string{sourceMovies, sourceGenres, sourceCast} {
		if src := sourceByName(t, report, name); !src.Missing {
			t.Errorf("source %s not marked missing", name)
		}
	}
	count, err := st.MovieCount(context.Background())
	if err != nil {
		t.Fatalf("MovieCount: %v", err)
	}
	if count != 0 {
		t.Fatalf("movie count = %d, want 0", count)
	}
}

func TestRefreshReconcilesCountryNames(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	writeAllSources(t, cfg)

	if _, err := Refresh(context.Background(), cfg, st, logging.NewNop()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	economy, err := st.LanguageEconomy(context.Background())
	if err != nil {
		t.Fatalf("LanguageEconomy: %v", err)
	}
	byCode := make(map[string]int64)
	for _, stat := range economy {
		byCode[stat.LanguageCode] = stat.Population
	}
	// "South Korea" resolved to KOR and joined world bank data.
	if byCode["ko"] != 51000000 {
		t.Errorf("ko economy population = %d, want 51000000", byCode["ko"])
	}
	// Atlantis stays out of the economy join but not out of the speaker total.
	if byCode["en"] != 331000000 {
		t.Errorf("en economy population = %d, want 331000000", byCode["en"])
	}

	speakers, err := st.LanguageSpeakers(context.Background())
	if err != nil {
		t.Fatalf("LanguageSpeakers: %v", err)
	}
	for _, stat := range speakers {
		if stat.LanguageCode == "en" && stat.Population != 331001000 {
			t.Errorf("en speaker population = %d, want 331001000", stat.Population)
		}
	}
}

func TestRefreshFailsOnBrokenHeader(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	testsupport.WriteSource(t, cfg, cfg.Sources.WorldBankFile, "country,gdp\nUSA,100\n")

	_, err := Refresh(context.Background(), cfg, st, logging.NewNop())
	if err == nil {
		t.Fatal("expected error for source with missing required column")
	}
	if !errors.Is(err, services.ErrMalformedRecord) {
		t.Fatalf("error = %v, want ErrMalformedRecord marker", err)
	}
}

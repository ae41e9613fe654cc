package store_test

import (
	"context"
	"testing"

	"filmlens/internal/store"
	"filmlens/internal/testsupport"
)

func sampleSnapshot() *store.Snapshot {
	return &store.Snapshot{
		Movies: []store.Movie{
			{ID: 1, Title: "Summer Hit", ReleaseDate: "2023-07-14", Budget: testsupport.FloatPtr(1_000_000), Revenue: testsupport.FloatPtr(50_000_000), Language: "en"},
			{ID: 2, Title: "Winter Flop", ReleaseDate: "2023-01-20", Budget: testsupport.FloatPtr(40_000_000), Revenue: testsupport.FloatPtr(5_000_000), Language: "en"},
			{ID: 3, Title: "Seoul Story", ReleaseDate: "2023-07-01", Budget: testsupport.FloatPtr(8_000_000), Revenue: testsupport.FloatPtr(30_000_000), Language: "ko"},
			{ID: 4, Title: "No Numbers", Language: "fr"},
		},
		Genres: []store.GenreTag{
			{MovieID: 1, Genre: "Action"},
			{MovieID: 1, Genre: "Comedy"},
			{MovieID: 2, Genre: "Drama"},
			{MovieID: 3, Genre: "Drama"},
		},
		Cast: []store.CastCredit{
			{MovieID: 1, Actor: "Ada Park"},
			{MovieID: 3, Actor: "Min-jun Lee"},
		},
		Markets: []store.MarketRow{
			{LanguageCode: "ko", Language: "Korean", Country: "South Korea", CountryCode: "KOR", Population: 51_000_000},
			{LanguageCode: "en", Language: "English", Country: "United States", CountryCode: "USA", Population: 331_000_000},
			{LanguageCode: "en", Language: "English", Country: "Atlantis", Population: 1_000},
		},
		Economies: []store.EconomyRow{
			{ISOCode: "KOR", GDP: testsupport.FloatPtr(1.8e12), Population: testsupport.IntPtr(51_000_000)},
			{ISOCode: "USA", GDP: testsupport.FloatPtr(2.5e13), Population: testsupport.IntPtr(331_000_000)},
		},
	}
}

func TestReplaceAllIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	testsupport.SeedSnapshot(t, st, sampleSnapshot())
	firstGenres, err := st.MeanRevenueByGenre(ctx)
	if err != nil {
		t.Fatalf("MeanRevenueByGenre: %v", err)
	}

	testsupport.SeedSnapshot(t, st, sampleSnapshot())
	secondGenres, err := st.MeanRevenueByGenre(ctx)
	if err != nil {
		t.Fatalf("MeanRevenueByGenre after re-ingest: %v", err)
	}

	if len(firstGenres) != len(secondGenres) {
		t.Fatalf("re-ingestion changed group count: %d vs %d", len(firstGenres), len(secondGenres))
	}
	for i := range firstGenres {
		if firstGenres[i] != secondGenres[i] {
			t.Fatalf("re-ingestion changed aggregate: %#v vs %#v", firstGenres[i], secondGenres[i])
		}
	}

	count, err := st.MovieCount(ctx)
	if err != nil {
		t.Fatalf("MovieCount: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 movies after double ingest, got %d", count)
	}
}

func TestMeanRevenueByGenreCountsMultiGenreMovies(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedSnapshot(t, st, sampleSnapshot())

	stats, err := st.MeanRevenueByGenre(context.Background())
	if err != nil {
		t.Fatalf("MeanRevenueByGenre: %v", err)
	}

	byKey := make(map[string]store.GroupStat, len(stats))
	for _, stat := range stats {
		byKey[stat.Key] = stat
	}

	// Movie 1 carries Action and Comedy: full revenue lands in both groups.
	if action := byKey["Action"]; action.Mean != 50_000_000 || action.Count != 1 {
		t.Fatalf("unexpected Action stat: %#v", action)
	}
	if comedy := byKey["Comedy"]; comedy.Mean != 50_000_000 {
		t.Fatalf("unexpected Comedy stat: %#v", comedy)
	}
	if drama := byKey["Drama"]; drama.Count != 2 || drama.Mean != 17_500_000 {
		t.Fatalf("unexpected Drama stat: %#v", drama)
	}
}

func TestMeanRevenueByMonthExcludesMissingDates(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedSnapshot(t, st, sampleSnapshot())

	stats, err := st.MeanRevenueByMonth(context.Background())
	if err != nil {
		t.Fatalf("MeanRevenueByMonth: %v", err)
	}

	byMonth := make(map[int]store.MonthStat, len(stats))
	for _, stat := range stats {
		byMonth[stat.Month] = stat
	}

	// Month 7 holds movies 1 and 3; movie 4 (no date, no revenue) is excluded.
	july, ok := byMonth[7]
	if !ok {
		t.Fatal("expected a July group")
	}
	if july.Count != 2 || july.Mean != 40_000_000 {
		t.Fatalf("unexpected July stat: %#v", july)
	}
	if _, ok := byMonth[0]; ok {
		t.Fatal("missing dates must not produce a month-zero group")
	}
}

func TestLanguageEconomyExcludesUnresolvedCountries(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedSnapshot(t, st, sampleSnapshot())

	stats, err := st.LanguageEconomy(context.Background())
	if err != nil {
		t.Fatalf("LanguageEconomy: %v", err)
	}

	byCode := make(map[string]store.EconomyStat, len(stats))
	for _, stat := range stats {
		byCode[stat.LanguageCode] = stat
	}

	// The Atlantis row has no country_code: English population counts only the USA.
	english, ok := byCode["en"]
	if !ok {
		t.Fatal("expected an English economy rollup")
	}
	if english.Population != 331_000_000 || english.Countries != 1 {
		t.Fatalf("unresolved row leaked into economy join: %#v", english)
	}
	if korean := byCode["ko"]; korean.MeanGDP != 1.8e12 {
		t.Fatalf("unexpected Korean economy stat: %#v", korean)
	}
}

func TestLanguageSpeakersIncludesUnresolvedRows(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedSnapshot(t, st, sampleSnapshot())

	stats, err := st.LanguageSpeakers(context.Background())
	if err != nil {
		t.Fatalf("LanguageSpeakers: %v", err)
	}
	for _, stat := range stats {
		if stat.LanguageCode == "en" {
			// Speaker reach counts every market row, resolved or not.
			if stat.Population != 331_001_000 || stat.Countries != 2 {
				t.Fatalf("unexpected English speaker stat: %#v", stat)
			}
			return
		}
	}
	t.Fatal("expected an English speaker rollup")
}

func TestTrainingRowsRequireAllFeatures(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedSnapshot(t, st, sampleSnapshot())

	rows, err := st.TrainingRows(context.Background())
	if err != nil {
		t.Fatalf("TrainingRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 training rows (movie 4 lacks numbers), got %d", len(rows))
	}
	for _, row := range rows {
		if row.Budget <= 0 || row.Month < 1 || row.Month > 12 {
			t.Fatalf("invalid training row: %#v", row)
		}
	}
}

func TestGetMovieRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedSnapshot(t, st, sampleSnapshot())
	ctx := context.Background()

	movie, err := st.GetMovie(ctx, 4)
	if err != nil {
		t.Fatalf("GetMovie: %v", err)
	}
	if movie == nil || movie.Title != "No Numbers" {
		t.Fatalf("unexpected movie: %#v", movie)
	}
	if movie.Budget != nil || movie.Revenue != nil {
		t.Fatalf("missing financials must stay nil: %#v", movie)
	}

	absent, err := st.GetMovie(ctx, 999)
	if err != nil {
		t.Fatalf("GetMovie absent: %v", err)
	}
	if absent != nil {
		t.Fatalf("expected nil for unknown id, got %#v", absent)
	}

	genres, err := st.MovieGenres(ctx, 1)
	if err != nil {
		t.Fatalf("MovieGenres: %v", err)
	}
	if len(genres) != 2 || genres[0] != "Action" || genres[1] != "Comedy" {
		t.Fatalf("unexpected genres: %v", genres)
	}
}

func TestCheckHealth(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedSnapshot(t, st, sampleSnapshot())

	health, err := st.CheckHealth(context.Background())
	if err != nil {
		t.Fatalf("CheckHealth: %v", err)
	}
	if !health.DatabaseExists || !health.DatabaseReadable {
		t.Fatalf("expected healthy database: %#v", health)
	}
	if len(health.MissingTables) != 0 {
		t.Fatalf("expected all tables present, missing: %v", health.MissingTables)
	}
	if health.MovieCount != 4 {
		t.Fatalf("expected 4 movies, got %d", health.MovieCount)
	}
	if !health.IntegrityCheck {
		t.Fatal("expected integrity check to pass")
	}
}

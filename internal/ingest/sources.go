package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"filmlens/internal/identity"
	"filmlens/internal/store"
)

// csvSource iterates a header-indexed CSV file. Columns are looked up by
// name so sources may carry extra columns (the market export includes a
// capital column, for example) without breaking ingestion.
type csvSource struct {
	reader  *csv.Reader
	columns map[string]int
	line    int
}

func openCSV(path string, required ...string) (*csvSource, func(), error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			_ = file.Close()
			return nil, nil, fmt.Errorf("missing required column %q", name)
		}
	}

	source := &csvSource{reader: reader, columns: columns, line: 1}
	return source, func() { _ = file.Close() }, nil
}

// next returns the following record, or nil at EOF. A structurally broken
// line surfaces as an error the caller reports and skips.
func (c *csvSource) next() ([]string, error) {
	record, err := c.reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	c.line++
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (c *csvSource) field(record []string, name string) string {
	idx, ok := c.columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseOptionalMoney(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", raw)
	}
	if value < 0 {
		return nil, fmt.Errorf("negative amount: %v", value)
	}
	return &value, nil
}

// normalizeReleaseDate validates an ISO release date. Unparsable dates are
// coerced to missing rather than rejecting the whole movie, mirroring how
// the month aggregate treats them: excluded, not faked.
func normalizeReleaseDate(raw string) string {
	if raw == "" {
		return ""
	}
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return ""
	}
	return raw
}

func readMovies(path string, resolver *identity.Resolver, report *SourceReport) ([]store.Movie, map[int64]struct{}, error) {
	src, closeFile, err := openCSV(path, "movie_id", "title")
	if err != nil {
		return nil, nil, err
	}
	defer closeFile()

	var movies []store.Movie
	ids := make(map[int64]struct{})
	for {
		record, err := src.next()
		if err != nil {
			report.reject(fmt.Sprintf("line %d: %v", src.line, err))
			continue
		}
		if record == nil {
			break
		}

		rawID := src.field(record, "movie_id")
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			report.reject(fmt.Sprintf("line %d: bad movie_id %q", src.line, rawID))
			continue
		}
		if _, dup := ids[id]; dup {
			report.reject(fmt.Sprintf("line %d: duplicate movie_id %d", src.line, id))
			continue
		}
		title := src.field(record, "title")
		if title == "" {
			report.reject(fmt.Sprintf("line %d: movie %d has no title", src.line, id))
			continue
		}
		budget, err := parseOptionalMoney(src.field(record, "budget"))
		if err != nil {
			report.reject(fmt.Sprintf("line %d: movie %d budget %v", src.line, id, err))
			continue
		}
		revenue, err := parseOptionalMoney(src.field(record, "revenue"))
		if err != nil {
			report.reject(fmt.Sprintf("line %d: movie %d revenue %v", src.line, id, err))
			continue
		}

		language := src.field(record, "language")
		if code := resolver.Language(language); code != "" {
			language = code
		} else {
			language = strings.ToLower(language)
		}

		movies = append(movies, store.Movie{
			ID:          id,
			Title:       title,
			ReleaseDate: normalizeReleaseDate(src.field(record, "release_date")),
			Budget:      budget,
			Revenue:     revenue,
			Language:    language,
		})
		ids[id] = struct{}{}
		report.Loaded++
	}
	return movies, ids, nil
}

// association is one (movie, value) row from the genres or cast files.
type association struct {
	MovieID int64
	Value   string
}

// readAssociations handles the genres and cast files, which share a shape:
// (movie_id, value). Rows referencing an unknown movie are rejected so the
// store's foreign keys never see a dangling association.
func readAssociations(path, column string, movieIDs map[int64]struct{}, report *SourceReport) ([]association, error) {
	src, closeFile, err := openCSV(path, "movie_id", column)
	if err != nil {
		return nil, err
	}
	defer closeFile()

	var pairs []association
	seen := make(map[string]struct{})
	for {
		record, err := src.next()
		if err != nil {
			report.reject(fmt.Sprintf("line %d: %v", src.line, err))
			continue
		}
		if record == nil {
			break
		}

		rawID := src.field(record, "movie_id")
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			report.reject(fmt.Sprintf("line %d: bad movie_id %q", src.line, rawID))
			continue
		}
		if _, ok := movieIDs[id]; !ok {
			report.reject(fmt.Sprintf("line %d: movie_id %d references no ingested movie", src.line, id))
			continue
		}
		value := src.field(record, column)
		if value == "" {
			report.reject(fmt.Sprintf("line %d: movie %d has empty %s", src.line, id, column))
			continue
		}

		key := rawID + "\x00" + strings.ToLower(value)
		if _, dup := seen[key]; dup {
			continue // natural dedup, not an error
		}
		seen[key] = struct{}{}
		pairs = append(pairs, association{MovieID: id, Value: value})
		report.Loaded++
	}
	return pairs, nil
}

func readMarkets(path string, resolver *identity.Resolver, report *SourceReport) ([]store.MarketRow, error) {
	src, closeFile, err := openCSV(path, "country", "language_code", "language", "population")
	if err != nil {
		return nil, err
	}
	defer closeFile()

	var markets []store.MarketRow
	seen := make(map[string]struct{})
	for {
		record, err := src.next()
		if err != nil {
			report.reject(fmt.Sprintf("line %d: %v", src.line, err))
			continue
		}
		if record == nil {
			break
		}

		country := src.field(record, "country")
		if country == "" {
			report.reject(fmt.Sprintf("line %d: empty country", src.line))
			continue
		}
		rawCode := src.field(record, "language_code")
		if rawCode == "" {
			report.reject(fmt.Sprintf("line %d: %s has empty language_code", src.line, country))
			continue
		}
		population, err := strconv.ParseInt(src.field(record, "population"), 10, 64)
		if err != nil || population < 0 {
			report.reject(fmt.Sprintf("line %d: %s has bad population %q", src.line, country, src.field(record, "population")))
			continue
		}

		languageCode := resolver.Language(rawCode)
		if languageCode == "" {
			languageCode = strings.ToLower(rawCode)
		}
		languageName := src.field(record, "language")
		if languageName == "" {
			languageName = identity.LanguageDisplayName(languageCode)
		}

		key := languageCode + "\x00" + strings.ToLower(country)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		// Unresolved countries keep an empty code and stay out of economy joins.
		countryCode, _ := resolver.Country(country)

		markets = append(markets, store.MarketRow{
			LanguageCode: languageCode,
			Language:     languageName,
			Country:      country,
			CountryCode:  countryCode,
			Population:   population,
		})
		report.Loaded++
	}
	return markets, nil
}

func readEconomies(path string, report *SourceReport) ([]store.EconomyRow, error) {
	src, closeFile, err := openCSV(path, "iso_code")
	if err != nil {
		return nil, err
	}
	defer closeFile()

	var economies []store.EconomyRow
	seen := make(map[string]struct{})
	for {
		record, err := src.next()
		if err != nil {
			report.reject(fmt.Sprintf("line %d: %v", src.line, err))
			continue
		}
		if record == nil {
			break
		}

		iso := strings.ToUpper(src.field(record, "iso_code"))
		if len(iso) != 3 || strings.IndexFunc(iso, func(r rune) bool { return r < 'A' || r > 'Z' }) >= 0 {
			report.reject(fmt.Sprintf("line %d: bad iso_code %q", src.line, src.field(record, "iso_code")))
			continue
		}
		if _, dup := seen[iso]; dup {
			report.reject(fmt.Sprintf("line %d: duplicate iso_code %s", src.line, iso))
			continue
		}

		gdp, err := parseOptionalMoney(src.field(record, "gdp"))
		if err != nil {
			report.reject(fmt.Sprintf("line %d: %s gdp %v", src.line, iso, err))
			continue
		}
		var population *int64
		if raw := src.field(record, "population_gdp"); raw != "" {
			value, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || value < 0 {
				report.reject(fmt.Sprintf("line %d: %s has bad population_gdp %q", src.line, iso, raw))
				continue
			}
			population = &value
		}

		seen[iso] = struct{}{}
		economies = append(economies, store.EconomyRow{ISOCode: iso, GDP: gdp, Population: population})
		report.Loaded++
	}
	return economies, nil
}

func sourceMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

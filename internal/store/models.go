package store

// Movie is one film metadata row. Budget and Revenue are nil when the source
// did not report them; such movies are excluded from ratio-based aggregates.
type Movie struct {
	ID          int64
	Title       string
	ReleaseDate string // ISO date (2006-01-02), empty when missing
	Budget      *float64
	Revenue     *float64
	Language    string // movie's own language field, normalized to ISO 639-1 when recognized
}

// GenreTag associates a movie with one genre label.
type GenreTag struct {
	MovieID int64
	Genre   string
}

// CastCredit associates a movie with one actor name.
type CastCredit struct {
	MovieID int64
	Actor   string
}

// MarketRow links a language to one country hosting its speakers.
// CountryCode is the reconciled alpha-3 code; empty means unresolved, and the
// row is excluded from economy joins without being zero-filled.
type MarketRow struct {
	LanguageCode string
	Language     string
	Country      string
	CountryCode  string
	Population   int64
}

// EconomyRow is one country's world-bank indicators. GDP or Population may be
// nil when the indicator was unavailable for the reference year.
type EconomyRow struct {
	ISOCode    string
	GDP        *float64
	Population *int64
}

// Snapshot is the complete post-reconciliation content of one refresh.
// ReplaceAll swaps the store to exactly this content in a single transaction.
type Snapshot struct {
	Movies    []Movie
	Genres    []GenreTag
	Cast      []CastCredit
	Markets   []MarketRow
	Economies []EconomyRow
}

// GroupStat is one aggregate group as read back from the store.
type GroupStat struct {
	Key   string
	Mean  float64
	Total float64
	Count int
}

// MonthStat is revenue aggregated over one calendar month.
type MonthStat struct {
	Month int
	Mean  float64
	Count int
}

// SpeakerStat is the speaker population rollup for one language across all
// of its market rows (resolved or not).
type SpeakerStat struct {
	LanguageCode string
	Language     string
	Population   int64
	Countries    int
}

// EconomyStat is the GDP-weighted rollup for one language over market rows
// whose country resolved to a canonical code present in world_bank_data.
type EconomyStat struct {
	LanguageCode string
	Language     string
	Population   int64
	MeanGDP      float64
	Countries    int
}

// TrainingRow is one movie with every field the classifier needs present.
type TrainingRow struct {
	Budget  float64
	Revenue float64
	Month   int
}

// DatabaseHealth captures diagnostic information about the entity store.
type DatabaseHealth struct {
	DBPath           string
	DatabaseExists   bool
	DatabaseReadable bool
	SchemaVersion    string
	TablesPresent    []string
	MissingTables    []string
	IntegrityCheck   bool
	MovieCount       int
	Error            string
}

package identity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type countryEntry struct {
	code3   string   // ISO 3166-1 alpha-3
	display string   // Canonical country name
	words   []string // Name forms and colloquial aliases, lowercase
}

// Countries appearing in the film, language-market, and world-bank sources.
// Aliases cover the colloquial spellings those sources actually emit; the
// table is deliberately exact-match only, so an unlisted spelling stays
// unresolved instead of being guessed at.
var countries = []countryEntry{
	{"USA", "United States", []string{"united states", "united states of america", "usa", "us", "america"}},
	{"GBR", "United Kingdom", []string{"united kingdom", "uk", "great britain", "britain", "england"}},
	{"FRA", "France", []string{"france"}},
	{"DEU", "Germany", []string{"germany"}},
	{"ITA", "Italy", []string{"italy"}},
	{"ESP", "Spain", []string{"spain"}},
	{"PRT", "Portugal", []string{"portugal"}},
	{"IRL", "Ireland", []string{"ireland"}},
	{"NLD", "Netherlands", []string{"netherlands", "holland", "the netherlands"}},
	{"BEL", "Belgium", []string{"belgium"}},
	{"CHE", "Switzerland", []string{"switzerland"}},
	{"AUT", "Austria", []string{"austria"}},
	{"POL", "Poland", []string{"poland"}},
	{"CZE", "Czechia", []string{"czechia", "czech republic"}},
	{"HUN", "Hungary", []string{"hungary"}},
	{"ROU", "Romania", []string{"romania"}},
	{"GRC", "Greece", []string{"greece"}},
	{"SWE", "Sweden", []string{"sweden"}},
	{"NOR", "Norway", []string{"norway"}},
	{"DNK", "Denmark", []string{"denmark"}},
	{"FIN", "Finland", []string{"finland"}},
	{"ISL", "Iceland", []string{"iceland"}},
	{"RUS", "Russia", []string{"russia", "russian federation"}},
	{"UKR", "Ukraine", []string{"ukraine"}},
	{"TUR", "Turkey", []string{"turkey", "turkiye", "türkiye"}},
	{"CHN", "China", []string{"china", "people's republic of china", "mainland china"}},
	{"TWN", "Taiwan", []string{"taiwan"}},
	{"HKG", "Hong Kong", []string{"hong kong"}},
	{"JPN", "Japan", []string{"japan"}},
	{"KOR", "South Korea", []string{"south korea", "korea", "republic of korea", "korea, republic of"}},
	{"PRK", "North Korea", []string{"north korea", "korea, democratic people's republic of"}},
	{"IND", "India", []string{"india"}},
	{"PAK", "Pakistan", []string{"pakistan"}},
	{"BGD", "Bangladesh", []string{"bangladesh"}},
	{"LKA", "Sri Lanka", []string{"sri lanka"}},
	{"IDN", "Indonesia", []string{"indonesia"}},
	{"MYS", "Malaysia", []string{"malaysia"}},
	{"SGP", "Singapore", []string{"singapore"}},
	{"THA", "Thailand", []string{"thailand"}},
	{"VNM", "Vietnam", []string{"vietnam", "viet nam"}},
	{"PHL", "Philippines", []string{"philippines", "the philippines"}},
	{"AUS", "Australia", []string{"australia"}},
	{"NZL", "New Zealand", []string{"new zealand"}},
	{"CAN", "Canada", []string{"canada"}},
	{"MEX", "Mexico", []string{"mexico"}},
	{"BRA", "Brazil", []string{"brazil"}},
	{"ARG", "Argentina", []string{"argentina"}},
	{"CHL", "Chile", []string{"chile"}},
	{"COL", "Colombia", []string{"colombia"}},
	{"PER", "Peru", []string{"peru"}},
	{"VEN", "Venezuela", []string{"venezuela"}},
	{"EGY", "Egypt", []string{"egypt"}},
	{"MAR", "Morocco", []string{"morocco"}},
	{"DZA", "Algeria", []string{"algeria"}},
	{"TUN", "Tunisia", []string{"tunisia"}},
	{"NGA", "Nigeria", []string{"nigeria"}},
	{"KEN", "Kenya", []string{"kenya"}},
	{"ZAF", "South Africa", []string{"south africa"}},
	{"ETH", "Ethiopia", []string{"ethiopia"}},
	{"GHA", "Ghana", []string{"ghana"}},
	{"ISR", "Israel", []string{"israel"}},
	{"SAU", "Saudi Arabia", []string{"saudi arabia"}},
	{"ARE", "United Arab Emirates", []string{"united arab emirates", "uae"}},
	{"QAT", "Qatar", []string{"qatar"}},
	{"IRN", "Iran", []string{"iran", "iran, islamic republic of"}},
	{"IRQ", "Iraq", []string{"iraq"}},
	{"JOR", "Jordan", []string{"jordan"}},
	{"LBN", "Lebanon", []string{"lebanon"}},
	{"KAZ", "Kazakhstan", []string{"kazakhstan"}},
	{"UZB", "Uzbekistan", []string{"uzbekistan"}},
	{"AFG", "Afghanistan", []string{"afghanistan"}},
	{"NPL", "Nepal", []string{"nepal"}},
	{"MMR", "Myanmar", []string{"myanmar", "burma"}},
	{"KHM", "Cambodia", []string{"cambodia"}},
	{"CUB", "Cuba", []string{"cuba"}},
	{"DOM", "Dominican Republic", []string{"dominican republic"}},
	{"URY", "Uruguay", []string{"uruguay"}},
	{"BOL", "Bolivia", []string{"bolivia"}},
	{"ECU", "Ecuador", []string{"ecuador"}},
	{"PRY", "Paraguay", []string{"paraguay"}},
	{"SVK", "Slovakia", []string{"slovakia"}},
	{"SVN", "Slovenia", []string{"slovenia"}},
	{"HRV", "Croatia", []string{"croatia"}},
	{"SRB", "Serbia", []string{"serbia"}},
	{"BGR", "Bulgaria", []string{"bulgaria"}},
	{"EST", "Estonia", []string{"estonia"}},
	{"LVA", "Latvia", []string{"latvia"}},
	{"LTU", "Lithuania", []string{"lithuania"}},
	{"LUX", "Luxembourg", []string{"luxembourg"}},
	{"MLT", "Malta", []string{"malta"}},
	{"CYP", "Cyprus", []string{"cyprus"}},
}

var (
	countryByCode map[string]*countryEntry
	countryByWord map[string]*countryEntry
)

func init() {
	countryByCode = make(map[string]*countryEntry, len(countries))
	countryByWord = make(map[string]*countryEntry, len(countries)*2)
	for i := range countries {
		e := &countries[i]
		countryByCode[strings.ToLower(e.code3)] = e
		for _, w := range e.words {
			countryByWord[w] = e
		}
	}
}

func lookupCountry(raw string) *countryEntry {
	raw = strings.ToLower(strings.Join(strings.Fields(raw), " "))
	if raw == "" {
		return nil
	}
	if len(raw) == 3 {
		if e, ok := countryByCode[raw]; ok {
			return e
		}
	}
	if e, ok := countryByWord[raw]; ok {
		return e
	}
	return nil
}

// CountryToISO3 resolves a raw country name, alias, or alpha-3 code to its
// canonical ISO 3166-1 alpha-3 code. The second return reports whether the
// input resolved; callers must treat false as Unresolved rather than guessing.
func CountryToISO3(raw string) (string, bool) {
	if e := lookupCountry(raw); e != nil {
		return e.code3, true
	}
	return "", false
}

// CountryDisplayName returns the canonical country name for a resolvable
// input, or a title-cased rendering of the raw text when unresolved so
// reports stay readable.
func CountryDisplayName(raw string) string {
	if e := lookupCountry(raw); e != nil {
		return e.display
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "Unknown"
	}
	return cases.Title(language.English).String(strings.ToLower(trimmed))
}

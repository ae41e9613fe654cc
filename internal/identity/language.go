package identity

import "strings"

type languageEntry struct {
	code2   string   // ISO 639-1 (2-letter)
	code3   string   // ISO 639-2 primary (3-letter)
	alt3    string   // ISO 639-2 alternate (e.g. "fre" vs "fra")
	display string   // Human-readable name
	words   []string // Full word forms (e.g. "english")
}

var languages = []languageEntry{
	{"en", "eng", "", "English", []string{"english"}},
	{"es", "spa", "", "Spanish", []string{"spanish", "castilian"}},
	{"fr", "fra", "fre", "French", []string{"french"}},
	{"de", "deu", "ger", "German", []string{"german"}},
	{"it", "ita", "", "Italian", []string{"italian"}},
	{"pt", "por", "", "Portuguese", []string{"portuguese"}},
	{"ja", "jpn", "", "Japanese", []string{"japanese"}},
	{"ko", "kor", "", "Korean", []string{"korean"}},
	{"zh", "zho", "chi", "Chinese", []string{"chinese", "mandarin"}},
	{"ru", "rus", "", "Russian", []string{"russian"}},
	{"ar", "ara", "", "Arabic", []string{"arabic"}},
	{"hi", "hin", "", "Hindi", []string{"hindi"}},
	{"nl", "nld", "dut", "Dutch", []string{"dutch", "flemish"}},
	{"pl", "pol", "", "Polish", []string{"polish"}},
	{"sv", "swe", "", "Swedish", []string{"swedish"}},
	{"da", "dan", "", "Danish", []string{"danish"}},
	{"no", "nor", "", "Norwegian", []string{"norwegian"}},
	{"fi", "fin", "", "Finnish", []string{"finnish"}},
	{"tr", "tur", "", "Turkish", []string{"turkish"}},
	{"th", "tha", "", "Thai", []string{"thai"}},
	{"ta", "tam", "", "Tamil", []string{"tamil"}},
	{"te", "tel", "", "Telugu", []string{"telugu"}},
	{"id", "ind", "", "Indonesian", []string{"indonesian"}},
	{"vi", "vie", "", "Vietnamese", []string{"vietnamese"}},
	{"el", "ell", "gre", "Greek", []string{"greek"}},
	{"he", "heb", "", "Hebrew", []string{"hebrew"}},
	{"cs", "ces", "cze", "Czech", []string{"czech"}},
	{"hu", "hun", "", "Hungarian", []string{"hungarian"}},
	{"fa", "fas", "per", "Persian", []string{"persian", "farsi"}},
	{"uk", "ukr", "", "Ukrainian", []string{"ukrainian"}},
	{"ro", "ron", "rum", "Romanian", []string{"romanian"}},
	{"bn", "ben", "", "Bengali", []string{"bengali"}},
	{"tl", "tgl", "", "Tagalog", []string{"tagalog", "filipino"}},
	{"ms", "msa", "may", "Malay", []string{"malay"}},
	{"ur", "urd", "", "Urdu", []string{"urdu"}},
}

// Index maps built at init time. Immutable after process start.
var (
	langByCode2 map[string]*languageEntry
	langByCode3 map[string]*languageEntry
	langByWord  map[string]*languageEntry
)

func init() {
	langByCode2 = make(map[string]*languageEntry, len(languages))
	langByCode3 = make(map[string]*languageEntry, len(languages)*2)
	langByWord = make(map[string]*languageEntry, len(languages))
	for i := range languages {
		e := &languages[i]
		langByCode2[e.code2] = e
		langByCode3[e.code3] = e
		if e.alt3 != "" {
			langByCode3[e.alt3] = e
		}
		for _, w := range e.words {
			langByWord[w] = e
		}
	}
}

func lookupLanguage(raw string) *languageEntry {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return nil
	}
	// GeoNames-style compound codes like "en-US" carry the base code first.
	if idx := strings.IndexAny(raw, "-_"); idx > 0 {
		raw = raw[:idx]
	}
	if e, ok := langByCode2[raw]; ok {
		return e
	}
	if e, ok := langByCode3[raw]; ok {
		return e
	}
	if e, ok := langByWord[raw]; ok {
		return e
	}
	return nil
}

// LanguageToISO2 converts any recognized language code or word form to
// ISO 639-1 (2-letter). Returns empty string for unrecognized input.
// If the input is already a 2-letter code (even if unknown), it passes through.
func LanguageToISO2(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}
	if e := lookupLanguage(trimmed); e != nil {
		return e.code2
	}
	if len(trimmed) == 2 {
		return trimmed
	}
	return ""
}

// LanguageToISO3 converts any recognized language code to ISO 639-2
// (3-letter). Returns "und" for unrecognized 2-letter codes, passes through
// unknown 3-letter codes.
func LanguageToISO3(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return "und"
	}
	if e := lookupLanguage(trimmed); e != nil {
		return e.code3
	}
	if len(trimmed) == 3 {
		return trimmed
	}
	return "und"
}

// LanguageDisplayName returns a human-readable language name for any
// recognized code. Returns "Unknown" for empty input, or the uppercased code
// for unrecognized input.
func LanguageDisplayName(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "Unknown"
	}
	if e := lookupLanguage(raw); e != nil {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(raw))
}

// NormalizeLanguageList deduplicates and normalizes a list of language codes
// to ISO 639-1.
func NormalizeLanguageList(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, lang := range raw {
		trimmed := strings.ToLower(strings.TrimSpace(lang))
		if trimmed == "" {
			continue
		}
		if len(trimmed) > 2 {
			if mapped := LanguageToISO2(trimmed); mapped != "" {
				trimmed = mapped
			}
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	return normalized
}

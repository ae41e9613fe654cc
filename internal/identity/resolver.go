package identity

import (
	"sort"
	"strings"
)

// Resolver memoizes country and language lookups for one pipeline run and
// records every raw string that failed to resolve. Memoization guarantees the
// same raw input always maps to the same answer within a run; the unresolved
// tally feeds the ingest report so exclusions are observable, never silent.
//
// Resolver is not safe for concurrent use. The pipeline is single-threaded
// batch work, so each refresh owns its own instance.
type Resolver struct {
	countryCache map[string]countryResult
	languageCache map[string]string
	unresolved   map[string]int
}

type countryResult struct {
	code string
	ok   bool
}

// UnresolvedIdentifier is one raw string the resolver could not map, with the
// number of times it was seen during the run.
type UnresolvedIdentifier struct {
	Raw   string `json:"raw"`
	Count int    `json:"count"`
}

// NewResolver returns an empty per-run resolver.
func NewResolver() *Resolver {
	return &Resolver{
		countryCache:  make(map[string]countryResult),
		languageCache: make(map[string]string),
		unresolved:    make(map[string]int),
	}
}

// Country resolves a raw country name or code to its canonical alpha-3 code.
// Unresolved inputs are tallied and reported via Report; the caller excludes
// the affected row from code-dependent joins.
func (r *Resolver) Country(raw string) (string, bool) {
	key := normalizeKey(raw)
	if key == "" {
		return "", false
	}
	if cached, hit := r.countryCache[key]; hit {
		if !cached.ok {
			r.unresolved[key]++
		}
		return cached.code, cached.ok
	}
	code, ok := CountryToISO3(raw)
	r.countryCache[key] = countryResult{code: code, ok: ok}
	if !ok {
		r.unresolved[key]++
	}
	return code, ok
}

// Language normalizes a raw language code or name to ISO 639-1. An empty
// result means the input is unrecognized; language rows keep their raw code
// in that case rather than being dropped, since the movie-language field is
// a separate concept from the reconciled market set.
func (r *Resolver) Language(raw string) string {
	key := normalizeKey(raw)
	if key == "" {
		return ""
	}
	if cached, hit := r.languageCache[key]; hit {
		return cached
	}
	code := LanguageToISO2(raw)
	r.languageCache[key] = code
	return code
}

// Report returns the unresolved identifiers seen during this run, sorted by
// descending occurrence count then lexically for determinism.
func (r *Resolver) Report() []UnresolvedIdentifier {
	out := make([]UnresolvedIdentifier, 0, len(r.unresolved))
	for raw, count := range r.unresolved {
		out = append(out, UnresolvedIdentifier{Raw: raw, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Raw < out[j].Raw
	})
	return out
}

// UnresolvedCount returns the number of distinct unresolved identifiers.
func (r *Resolver) UnresolvedCount() int {
	return len(r.unresolved)
}

func normalizeKey(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}

package ingest

import (
	"time"

	"filmlens/internal/identity"
)

// maxReasonSamples caps how many per-row rejection reasons a source report
// retains. The rejected count is always exact; only the samples are capped.
const maxReasonSamples = 10

// SourceReport summarizes one source file's outcome within a refresh.
type SourceReport struct {
	Name     string   `json:"name"`
	File     string   `json:"file"`
	Missing  bool     `json:"missing"`
	Loaded   int      `json:"loaded"`
	Rejected int      `json:"rejected"`
	Reasons  []string `json:"reasons,omitempty"`
}

func (r *SourceReport) reject(reason string) {
	r.Rejected++
	if len(r.Reasons) < maxReasonSamples {
		r.Reasons = append(r.Reasons, reason)
	}
}

// Report is the observable outcome of one refresh run. Every exclusion the
// pipeline made (malformed rows, unresolved countries) appears here so
// missing data is never mistaken for observed data.
type Report struct {
	RunID      string                          `json:"run_id"`
	StartedAt  time.Time                       `json:"started_at"`
	FinishedAt time.Time                       `json:"finished_at"`
	Sources    []SourceReport                  `json:"sources"`
	Unresolved []identity.UnresolvedIdentifier `json:"unresolved,omitempty"`
}

// TotalLoaded sums loaded rows across all sources.
func (r *Report) TotalLoaded() int {
	total := 0
	for _, src := range r.Sources {
		total += src.Loaded
	}
	return total
}

// TotalRejected sums rejected rows across all sources.
func (r *Report) TotalRejected() int {
	total := 0
	for _, src := range r.Sources {
		total += src.Rejected
	}
	return total
}

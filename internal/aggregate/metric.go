package aggregate

// Metric is one derived value that may be impossible to compute. A zero or
// missing denominator produces an invalid metric carrying the reason; it is
// never collapsed to a numeric zero, since "zero revenue per million" and
// "no speakers to divide by" are different facts.
type Metric struct {
	Value  float64 `json:"value"`
	Valid  bool    `json:"valid"`
	Reason string  `json:"reason,omitempty"`
}

// Computable wraps a successfully derived value.
func Computable(value float64) Metric {
	return Metric{Value: value, Valid: true}
}

// NotComputable marks a metric whose inputs do not permit computation.
func NotComputable(reason string) Metric {
	return Metric{Reason: reason}
}

// Breakdown maps group labels to their metric.
type Breakdown map[string]Metric

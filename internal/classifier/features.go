package classifier

// Feature names as persisted in the artifact. Order here defines vector
// order everywhere; the artifact stores the names so a loaded model can
// reject a mismatched layout instead of silently misapplying weights.
const (
	featureBudget       = "budget"
	featureReleaseMonth = "release_month"
)

func featureNames() []string {
	return []string{featureBudget, featureReleaseMonth}
}

func featureVector(budget float64, month int) []float64 {
	return []float64{budget, float64(month)}
}

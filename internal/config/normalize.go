package config

import (
	"os"
	"sort"
	"strings"
)

// normalize expands paths, applies environment fallbacks, and canonicalizes
// enumerated fields. It runs after decoding and before validation so Validate
// always sees sanitized values.
func (c *Config) normalize() error {
	if env := strings.TrimSpace(os.Getenv("FILMLENS_DATA_DIR")); env != "" {
		c.Paths.DataDir = env
	}

	for _, field := range []*string{
		&c.Paths.DataDir,
		&c.Paths.LogDir,
		&c.Sources.Dir,
		&c.Model.ArtifactPath,
	} {
		expanded, err := ExpandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	if len(c.Model.RatioLadder) == 0 {
		c.Model.RatioLadder = defaultRatioLadder()
	}
	// The ladder is walked most-demanding first regardless of file order.
	sort.Sort(sort.Reverse(sort.Float64Slice(c.Model.RatioLadder)))

	if c.Model.MinClassCount <= 0 {
		c.Model.MinClassCount = defaultMinClassCount
	}
	if c.Model.LearningRate <= 0 {
		c.Model.LearningRate = defaultLearningRate
	}
	if c.Model.Epochs <= 0 {
		c.Model.Epochs = defaultEpochs
	}
	if c.Model.L2Penalty < 0 {
		c.Model.L2Penalty = defaultL2Penalty
	}
	if c.Model.Seed == 0 {
		c.Model.Seed = defaultSeed
	}

	return nil
}

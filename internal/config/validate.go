package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSources(); err != nil {
		return err
	}
	if err := c.validateModel(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must be set")
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateSources() error {
	if strings.TrimSpace(c.Sources.Dir) == "" {
		return errors.New("sources.dir must be set")
	}
	for name, value := range map[string]string{
		"sources.movies_file":          c.Sources.MoviesFile,
		"sources.genres_file":          c.Sources.GenresFile,
		"sources.cast_file":            c.Sources.CastFile,
		"sources.language_market_file": c.Sources.LanguageMarketFile,
		"sources.world_bank_file":      c.Sources.WorldBankFile,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s must be set", name)
		}
	}
	return nil
}

func (c *Config) validateModel() error {
	if strings.TrimSpace(c.Model.ArtifactPath) == "" {
		return errors.New("model.artifact_path must be set")
	}
	for _, cutoff := range c.Model.RatioLadder {
		if cutoff <= 0 {
			return fmt.Errorf("model.ratio_ladder entries must be positive, got %v", cutoff)
		}
	}
	if c.Model.LearningRate >= 10 {
		return fmt.Errorf("model.learning_rate %v is implausibly large", c.Model.LearningRate)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}

package config

const (
	defaultDataDir            = "~/.local/share/filmlens/data"
	defaultLogDir             = "~/.local/share/filmlens/logs"
	defaultSourcesDir         = "~/.local/share/filmlens/sources"
	defaultMoviesFile         = "movies.csv"
	defaultGenresFile         = "genres.csv"
	defaultCastFile           = "cast.csv"
	defaultLanguageMarketFile = "language_market.csv"
	defaultWorldBankFile      = "world_bank_data.csv"
	defaultArtifactPath       = "~/.local/share/filmlens/model/hit_predictor.json"
	defaultMinClassCount      = 3
	defaultLearningRate       = 0.1
	defaultEpochs             = 400
	defaultL2Penalty          = 0.01
	defaultSeed               = 42
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// defaultRatioLadder mirrors the profitability cutoffs the label-derivation
// step walks, most demanding first.
func defaultRatioLadder() []float64 {
	return []float64{2.0, 1.5, 1.0, 0.8}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Sources: Sources{
			Dir:                defaultSourcesDir,
			MoviesFile:         defaultMoviesFile,
			GenresFile:         defaultGenresFile,
			CastFile:           defaultCastFile,
			LanguageMarketFile: defaultLanguageMarketFile,
			WorldBankFile:      defaultWorldBankFile,
		},
		Model: Model{
			ArtifactPath:  defaultArtifactPath,
			RatioLadder:   defaultRatioLadder(),
			MinClassCount: defaultMinClassCount,
			LearningRate:  defaultLearningRate,
			Epochs:        defaultEpochs,
			L2Penalty:     defaultL2Penalty,
			Seed:          defaultSeed,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

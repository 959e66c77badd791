package config

const (
	defaultDataDir            = "~/.local/share/imdbooo"
	defaultLogDir             = "~/.local/share/imdbooo/logs"
	defaultBaseURL            = "https://m.imdb.com"
	defaultFilmographyBaseURL = "https://www.imdb.com"
	defaultSearchURL          = "https://v2.sg.media-imdb.com/suggests"
	defaultFetchTimeout       = 20
	defaultFetchRetryMax      = 2
	defaultHopWorkers         = 1
	maxHopWorkers             = 16
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultLogMaxSizeMB       = 10
	defaultLogMaxBackups      = 3
	defaultLogMaxAgeDays      = 30

	databaseFileName = "im.db"
	logFileName      = "imdbooo.log"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Site: Site{
			BaseURL:            defaultBaseURL,
			FilmographyBaseURL: defaultFilmographyBaseURL,
			SearchURL:          defaultSearchURL,
		},
		Fetch: Fetch{
			TimeoutSeconds: defaultFetchTimeout,
			RetryMax:       defaultFetchRetryMax,
		},
		Crawl: Crawl{
			HopWorkers: defaultHopWorkers,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			File:       true,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
	}
}

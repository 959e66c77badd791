package testsupport

import (
	"path/filepath"
	"testing"

	"imdbooo/internal/config"
)

// SiteBaseURL is the base URL test configs point at. Nothing listens there;
// tests route requests through a FakeFetcher keyed by these URLs.
const SiteBaseURL = "http://imdb.test"

// FilmographyBaseURL is the filmography host test configs point at. It differs
// from SiteBaseURL so person pages and filmography pages are distinct URLs.
const FilmographyBaseURL = "http://www.imdb.test"

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// File logging is off and the site endpoints point at SiteBaseURL.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Site.BaseURL = SiteBaseURL
	cfgVal.Site.FilmographyBaseURL = FilmographyBaseURL
	cfgVal.Site.SearchURL = SiteBaseURL + "/suggests"
	cfgVal.Logging.File = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return builder.cfg
}

// WithSite points every site endpoint at baseURL, typically an httptest server.
func WithSite(baseURL string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Site.BaseURL = baseURL
		b.cfg.Site.FilmographyBaseURL = baseURL
		b.cfg.Site.SearchURL = baseURL + "/suggests"
	}
}

// WithHopWorkers sets crawl.hop_workers.
func WithHopWorkers(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Crawl.HopWorkers = n
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}

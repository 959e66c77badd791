package crawl

import (
	"context"
	"log/slog"

	"imdbooo/internal/fetch"
	"imdbooo/internal/ident"
	"imdbooo/internal/logging"
	"imdbooo/internal/model"
	"imdbooo/internal/store"
)

// EntityStore is the cache the coordinator reads and writes.
type EntityStore interface {
	Get(ctx context.Context, id string) (*model.Entity, error)
	Put(ctx context.Context, entity *model.Entity) (store.InsertResult, error)
	AddCastAssociation(ctx context.Context, titleID, personID string) error
	RecordSearchResult(ctx context.Context, query string, entity *model.Entity) error
}

// Builder turns raw page text into an entity.
type Builder interface {
	Build(ctx context.Context, raw string) (*model.Entity, bool)
}

// Options tunes a Coordinator.
type Options struct {
	// HopWorkers bounds concurrent hop resolution. Values below 1 mean 1.
	HopWorkers int
	Logger     *slog.Logger
}

// Coordinator drives the fetch-or-reuse path.
type Coordinator struct {
	store   EntityStore
	fetcher fetch.Fetcher
	builder Builder
	scheme  ident.Scheme
	workers int
	logger  *slog.Logger
}

// New wires a coordinator. All collaborators are required.
func New(st EntityStore, fetcher fetch.Fetcher, b Builder, scheme ident.Scheme, opts Options) *Coordinator {
	return &Coordinator{
		store:   st,
		fetcher: fetcher,
		builder: b,
		scheme:  scheme,
		workers: max(opts.HopWorkers, 1),
		logger:  logging.NewComponentLogger(opts.Logger, "crawl"),
	}
}

// Outcome is the terminal state of one Resolve call.
type Outcome int

const (
	CacheHit Outcome = iota
	Persisted
	ReusedAfterConflict
	Skipped
	LookupFailed
	FetchFailed
	BuildFailed
	PersistFailed
)

func (o Outcome) String() string {
	switch o {
	case CacheHit:
		return "cache_hit"
	case Persisted:
		return "persisted"
	case ReusedAfterConflict:
		return "reused_after_conflict"
	case Skipped:
		return "skipped"
	case LookupFailed:
		return "lookup_failed"
	case FetchFailed:
		return "fetch_failed"
	case BuildFailed:
		return "build_failed"
	case PersistFailed:
		return "persist_failed"
	default:
		return "unknown"
	}
}

// Resolved reports whether the outcome produced an entity.
func (o Outcome) Resolved() bool {
	return o == CacheHit || o == Persisted || o == ReusedAfterConflict
}

// Resolve returns the cached entity for id, fetching and persisting it on a
// miss. The entity is nil unless the outcome is Resolved.
func (c *Coordinator) Resolve(ctx context.Context, id string) (*model.Entity, Outcome) {
	logger := logging.WithContext(ctx, c.logger).With(logging.String(logging.FieldEntityID, id))

	cached, err := c.store.Get(ctx, id)
	if err != nil {
		logging.WarnWithContext(logger, "cache lookup failed",
			"crawl.lookup_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the database file is readable"),
		)
		return nil, LookupFailed
	}
	if cached != nil {
		logger.Debug("cache hit")
		return cached, CacheHit
	}

	url, ok := c.scheme.CanonicalURL(id)
	if !ok {
		logger.Debug("unsupported identifier prefix, skipping")
		return nil, Skipped
	}

	raw, err := c.fetcher.Fetch(ctx, url)
	if fetch.IsNotFound(err) {
		// Stale links are common on listing pages.
		logger.Info("page not found, skipping",
			logging.String(logging.FieldURL, url),
			logging.String(logging.FieldEventType, "crawl.page_not_found"),
		)
		return nil, FetchFailed
	}
	if err != nil {
		logging.WarnWithContext(logger, "page fetch failed",
			"crawl.fetch_failed",
			logging.String(logging.FieldURL, url),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "re-run later; cached entities are reused"),
		)
		return nil, FetchFailed
	}

	built, ok := c.builder.Build(ctx, raw)
	if !ok {
		logger.Info("page did not yield an entity", logging.String(logging.FieldURL, url))
		return nil, BuildFailed
	}

	result, err := c.store.Put(ctx, built)
	switch result {
	case store.Inserted:
		return c.reread(ctx, logger, built, Persisted)
	case store.AlreadyExists:
		logger.Debug("entity inserted concurrently, re-reading")
		return c.reread(ctx, logger, built, ReusedAfterConflict)
	default:
		logging.WarnWithContext(logger, "entity insert failed",
			"crawl.persist_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the database is writable"),
		)
		return nil, PersistFailed
	}
}

// reread returns the persisted instance of built. The page may report a
// different id than the one requested (redirects), so the built id is used.
func (c *Coordinator) reread(ctx context.Context, logger *slog.Logger, built *model.Entity, outcome Outcome) (*model.Entity, Outcome) {
	persisted, err := c.store.Get(ctx, built.ID())
	if err != nil || persisted == nil {
		logging.WarnWithContext(logger, "persisted entity could not be read back",
			"crawl.reread_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "using the freshly built entity"),
		)
		return built, outcome
	}
	return persisted, outcome
}

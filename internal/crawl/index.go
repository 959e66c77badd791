package crawl

import (
	"context"
	"iter"
	"time"

	"github.com/google/uuid"

	"imdbooo/internal/logging"
	"imdbooo/internal/model"
)

// Source is the seed of an Index run: a URL to fetch, or raw page text.
// URL wins when both are set.
type Source struct {
	URL string
	Raw string
}

// IndexOptions selects which relations are expanded for each seed.
type IndexOptions struct {
	ExpandCast  bool
	ExpandRoles bool
}

// Index resolves every entity linked from source and, per opts, expands one
// hop from each. A seed is yielded after its expansion has finished.
func (c *Coordinator) Index(ctx context.Context, source Source, opts IndexOptions) iter.Seq[model.Entity] {
	return func(yield func(model.Entity) bool) {
		runCtx := logging.WithRunID(ctx, uuid.NewString())
		logger := logging.WithContext(runCtx, c.logger)

		var seeds iter.Seq[model.Entity]
		if source.URL != "" {
			logger.Info("index started", logging.String(logging.FieldURL, source.URL))
			seeds = c.ModelsFromURL(runCtx, source.URL)
		} else {
			logger.Info("index started", logging.Int("source_bytes", len(source.Raw)))
			seeds = c.ModelsFromSource(runCtx, source.Raw)
		}

		start := time.Now()
		var emitted, linked int
		defer func() {
			logger.Info("index finished",
				logging.Int("seeds", emitted),
				logging.Int("linked", linked),
				logging.Duration("elapsed", time.Since(start)),
			)
		}()

		for seed := range seeds {
			switch {
			case seed.Kind.IsTitle() && opts.ExpandCast,
				seed.Kind == model.KindPerson && opts.ExpandRoles:
				linked += len(c.ExpandOneHop(runCtx, &seed))
				// Pick up the cast links just written.
				if refreshed, err := c.store.Get(runCtx, seed.ID()); err == nil && refreshed != nil {
					seed = *refreshed
				}
			}
			emitted++
			if !yield(seed) {
				return
			}
		}
	}
}

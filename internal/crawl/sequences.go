package crawl

import (
	"context"
	"iter"

	"imdbooo/internal/extract"
	"imdbooo/internal/logging"
	"imdbooo/internal/model"
)

// ModelsFromSource yields one entity per distinct identifier linked from raw,
// in discovery order. Identifiers that cannot be resolved are skipped.
func (c *Coordinator) ModelsFromSource(ctx context.Context, raw string) iter.Seq[model.Entity] {
	return func(yield func(model.Entity) bool) {
		for _, id := range extract.IdentifiersIn(raw) {
			if ctx.Err() != nil {
				return
			}
			entity, outcome := c.Resolve(ctx, id)
			if !outcome.Resolved() {
				continue
			}
			if !yield(*entity) {
				return
			}
		}
	}
}

// ModelsFromURL fetches url and yields the entities linked from it. A fetch
// failure yields nothing.
func (c *Coordinator) ModelsFromURL(ctx context.Context, url string) iter.Seq[model.Entity] {
	return func(yield func(model.Entity) bool) {
		raw, err := c.fetcher.Fetch(ctx, url)
		if err != nil {
			logging.WarnWithContext(logging.WithContext(ctx, c.logger), "seed fetch failed",
				"crawl.seed_fetch_failed",
				logging.String(logging.FieldURL, url),
				logging.Error(err),
				logging.String(logging.FieldImpact, "no entities indexed from this url"),
			)
			return
		}
		for entity := range c.ModelsFromSource(ctx, raw) {
			if !yield(entity) {
				return
			}
		}
	}
}

// ModelsFromQueryResult resolves every suggestion stub, records it under the
// response's query and yields it.
func (c *Coordinator) ModelsFromQueryResult(ctx context.Context, result extract.SearchResponse) iter.Seq[model.Entity] {
	return func(yield func(model.Entity) bool) {
		logger := logging.WithContext(ctx, c.logger).With(logging.String(logging.FieldQuery, result.Query))
		for _, stub := range result.Results {
			if ctx.Err() != nil {
				return
			}
			entity, outcome := c.Resolve(ctx, stub.ID)
			if !outcome.Resolved() {
				continue
			}
			if err := c.store.RecordSearchResult(ctx, result.Query, entity); err != nil {
				logging.WarnWithContext(logger, "search result not cached",
					"crawl.search_record_failed",
					logging.String(logging.FieldEntityID, entity.ID()),
					logging.Error(err),
					logging.String(logging.FieldImpact, "query will be fetched again next time"),
				)
			}
			if !yield(*entity) {
				return
			}
		}
	}
}

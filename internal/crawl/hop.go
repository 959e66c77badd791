package crawl

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"imdbooo/internal/extract"
	"imdbooo/internal/logging"
	"imdbooo/internal/model"
)

// ExpandOneHop links entity to its direct relations. A title's cast page and
// a person's filmography page are fetched once; every listed identifier is
// resolved and associated. Resolved relations are returned in page order.
// The relations themselves are never expanded.
func (c *Coordinator) ExpandOneHop(ctx context.Context, entity *model.Entity) []model.Entity {
	if entity == nil {
		return nil
	}
	logger := logging.WithContext(ctx, c.logger).With(logging.String(logging.FieldEntityID, entity.ID()))

	var (
		url  string
		ok   bool
		list func(string) []string
		want func(model.Kind) bool
	)
	switch entity.Kind {
	case model.KindMovie, model.KindTVShow:
		url, ok = c.scheme.CastURL(entity.ID())
		list = extract.CastIDs
		want = func(k model.Kind) bool { return k == model.KindPerson }
	case model.KindPerson:
		url, ok = c.scheme.FilmographyURL(entity.ID())
		list = extract.FilmographyIDs
		want = model.Kind.IsTitle
	default:
		return nil
	}
	if !ok {
		return nil
	}

	raw, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		logging.WarnWithContext(logger, "hop page fetch failed",
			"crawl.hop_fetch_failed",
			logging.String(logging.FieldURL, url),
			logging.Error(err),
			logging.String(logging.FieldImpact, "relations not expanded"),
		)
		return nil
	}

	ids := list(raw)
	found := make([]*model.Entity, len(ids))

	var (
		g      errgroup.Group
		failed atomic.Int32
	)
	g.SetLimit(c.workers)
	for i, id := range ids {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			related, outcome := c.Resolve(ctx, id)
			if !outcome.Resolved() || !want(related.Kind) {
				return nil
			}
			titleID, personID := entity.ID(), related.ID()
			if entity.Kind == model.KindPerson {
				titleID, personID = related.ID(), entity.ID()
			}
			if err := c.store.AddCastAssociation(ctx, titleID, personID); err != nil {
				failed.Add(1)
				return fmt.Errorf("link %s to %s: %w", personID, titleID, err)
			}
			found[i] = related
			return nil
		})
	}
	// Wait reports the first link failure; the rest only count.
	if err := g.Wait(); err != nil {
		logging.WarnWithContext(logger, "cast links failed",
			"crawl.link_failed",
			logging.Int("failed", int(failed.Load())),
			logging.Error(err),
			logging.String(logging.FieldImpact, "relations not recorded"),
		)
	}

	related := make([]model.Entity, 0, len(found))
	for _, e := range found {
		if e != nil {
			related = append(related, *e)
		}
	}
	logger.Info("hop expanded",
		logging.String(logging.FieldURL, url),
		logging.Int("listed", len(ids)),
		logging.Int("linked", len(related)),
	)
	return related
}

// Package crawl coordinates fetching, building and caching entities.
//
// Every discovered identifier goes through Resolve, the fetch-or-reuse path:
// a cached row is returned as is; otherwise the canonical page is fetched,
// built and inserted, and the persisted row is read back. An insert that
// loses a race to another writer is resolved by the same read-back.
//
// ExpandOneHop follows exactly one relation (title to cast, person to
// filmography) and never recurses. Sequences returned by the Models* methods
// and Index are lazy: work happens as the caller ranges over them, and
// ranging again recomputes from the store and network.
//
// Fetch failures, unparseable pages and insert conflicts are logged and
// skipped; they never surface as errors.
package crawl

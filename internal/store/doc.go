// Package store persists crawled titles, people, genres and search results in
// SQLite and exposes the cache operations the crawl coordinator relies on.
//
// Rows are immutable once inserted. Put reports whether it inserted, found an
// existing row, or failed, so callers can route "already exists" through the
// same re-read path every time. Association writes (genres, cast links,
// search-result membership) are idempotent through composite primary keys.
//
// The schema lives in migrations/*.sql and is applied on Open. Transient
// SQLITE_BUSY errors are retried with bounded backoff; a file lock next to the
// database serializes writers across processes.
package store

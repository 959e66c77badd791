// Package fetch retrieves raw page text over HTTP.
//
// Fetcher is the narrow contract the crawl coordinator depends on. Client is
// the production implementation: a net/http client whose transport picks a
// User-Agent from a small pool, retries idempotent requests a bounded number
// of times, and optionally routes through a proxy. Non-2xx responses surface
// as *StatusError; bodies are transcoded to UTF-8 from the declared charset.
package fetch

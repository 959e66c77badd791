package testsupport

import (
	"context"
	"fmt"
	"sync"

	"imdbooo/internal/fetch"
)

// FakeFetcher serves canned pages by URL and records every request.
// Unknown URLs fail with a 404 StatusError.
type FakeFetcher struct {
	mu     sync.Mutex
	pages  map[string]string
	errs   map[string]error
	calls  []string
	counts map[string]int
}

// NewFakeFetcher returns an empty fetcher.
func NewFakeFetcher() *FakeFetcher {
	return &FakeFetcher{
		pages:  make(map[string]string),
		errs:   make(map[string]error),
		counts: make(map[string]int),
	}
}

// Page registers the body served for url.
func (f *FakeFetcher) Page(url, body string) *FakeFetcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages[url] = body
	return f
}

// Fail makes requests for url return err.
func (f *FakeFetcher) Fail(url string, err error) *FakeFetcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[url] = err
	return f
}

// Fetch implements fetch.Fetcher.
func (f *FakeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, url)
	f.counts[url]++
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err, ok := f.errs[url]; ok {
		return "", err
	}
	body, ok := f.pages[url]
	if !ok {
		return "", &fetch.StatusError{URL: url, StatusCode: 404, Status: "404 Not Found"}
	}
	return body, nil
}

// Calls returns the total number of requests.
func (f *FakeFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// CallsFor returns how many times url was requested.
func (f *FakeFetcher) CallsFor(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[url]
}

// URLs returns the requested URLs in order.
func (f *FakeFetcher) URLs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *FakeFetcher) String() string {
	return fmt.Sprintf("FakeFetcher(%d calls)", f.Calls())
}

var _ fetch.Fetcher = (*FakeFetcher)(nil)

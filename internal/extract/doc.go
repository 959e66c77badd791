// Package extract pulls identifiers and attribute values out of raw page
// text.
//
// Every extractor is independent and reports a missing value through its
// boolean result when its pattern does not match. Callers decide which fields
// are required; a miss here is an expected outcome for unexpected pages, not
// an error.
//
// Title and person pages are matched with regular expressions against the
// page's meta tags and a few stable markers. The full-credits page is parsed
// as HTML with goquery because cast links are only meaningful inside the
// credits container. Search suggestions arrive as JSONP and are unwrapped by
// ParseSearchResponse.
package extract

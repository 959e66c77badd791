package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// SearchStub is one suggestion returned by the search endpoint.
type SearchStub struct {
	ID       string `json:"id"`
	Label    string `json:"l"`
	Subtitle string `json:"s"`
	Year     int    `json:"y"`
	Category string `json:"q"`
}

// SearchResponse is a decoded suggestion payload.
type SearchResponse struct {
	Query   string       `json:"q"`
	Results []SearchStub `json:"d"`
}

// ParseSearchResponse decodes a suggestion body. The endpoint wraps its JSON
// in a callback, as in `imdb$the_matrix({...})`; bare JSON is accepted too.
func ParseSearchResponse(raw string) (SearchResponse, error) {
	body := strings.TrimSpace(raw)
	if body == "" {
		return SearchResponse{}, errors.New("empty search response")
	}
	if !strings.HasPrefix(body, "{") {
		open := strings.IndexByte(body, '(')
		if open < 0 || !strings.HasSuffix(body, ")") {
			return SearchResponse{}, errors.New("search response is neither JSON nor JSONP")
		}
		body = body[open+1 : len(body)-1]
	}

	var resp SearchResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return SearchResponse{}, fmt.Errorf("decode search response: %w", err)
	}

	stubs := resp.Results[:0]
	for _, stub := range resp.Results {
		stub.ID = strings.TrimSpace(stub.ID)
		if stub.ID == "" {
			continue
		}
		stubs = append(stubs, stub)
	}
	resp.Results = stubs
	return resp, nil
}

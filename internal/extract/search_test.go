package extract

import (
	"strings"
	"testing"
)

func TestParseSearchResponseJSONP(t *testing.T) {
	raw := `imdb$the_matrix({"v":1,"q":"the_matrix","d":[{"l":"The Matrix","id":"tt0133093","s":"Keanu Reeves","y":1999,"q":"feature"},{"l":"","id":""},{"l":"Keanu Reeves","id":"nm0000206","s":"Actor"}]})`
	resp, err := ParseSearchResponse(raw)
	if err != nil {
		t.Fatalf("ParseSearchResponse: %v", err)
	}
	if resp.Query != "the_matrix" {
		t.Fatalf("Query = %q", resp.Query)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 stubs, got %d", len(resp.Results))
	}
	if resp.Results[0].ID != "tt0133093" || resp.Results[0].Year != 1999 || resp.Results[0].Label != "The Matrix" {
		t.Fatalf("unexpected first stub %+v", resp.Results[0])
	}
	if resp.Results[1].ID != "nm0000206" {
		t.Fatalf("unexpected second stub %+v", resp.Results[1])
	}
}

func TestParseSearchResponseBareJSON(t *testing.T) {
	resp, err := ParseSearchResponse(`{"q":"x","d":[{"id":"tt1","l":"X"}]}`)
	if err != nil {
		t.Fatalf("ParseSearchResponse: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].ID != "tt1" {
		t.Fatalf("unexpected results %+v", resp.Results)
	}
}

func TestParseSearchResponseNoResults(t *testing.T) {
	resp, err := ParseSearchResponse(`imdb$zzz({"v":1,"q":"zzz"})`)
	if err != nil {
		t.Fatalf("ParseSearchResponse: %v", err)
	}
	if len(resp.Results) != 0 {
		t.Fatalf("expected no results, got %+v", resp.Results)
	}
}

func TestParseSearchResponseRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "<html>oops</html>", "cb({not json})"} {
		_, err := ParseSearchResponse(raw)
		if err == nil {
			t.Fatalf("expected error for %q", raw)
		}
		if raw == "cb({not json})" && !strings.Contains(err.Error(), "decode search response") {
			t.Fatalf("unexpected error %v", err)
		}
	}
}

package extract

import (
	"slices"
	"testing"
)

func TestCastIDsOnlyReadsCreditsContainer(t *testing.T) {
	raw := loadFixture(t, "cast.html")
	got := CastIDs(raw)
	want := []string{"nm0000206", "nm0000401"}
	if !slices.Equal(got, want) {
		t.Fatalf("CastIDs = %v, want %v", got, want)
	}
}

func TestCastIDsEmptyPage(t *testing.T) {
	if got := CastIDs("<html><body><p>nothing</p></body></html>"); len(got) != 0 {
		t.Fatalf("expected no cast, got %v", got)
	}
}

func TestIDFromHref(t *testing.T) {
	tests := map[string]string{
		"/name/nm0000206/?ref_=x": "nm0000206",
		"/name/nm0000206":         "nm0000206",
		"/title/tt1#cast":         "tt1",
		"nm0000206":               "",
		"":                        "",
	}
	for href, want := range tests {
		if got := idFromHref(href); got != want {
			t.Fatalf("idFromHref(%q) = %q, want %q", href, got, want)
		}
	}
}

package main

import (
	"encoding/json"
	"testing"
)

func TestShowPersonListsFilmography(t *testing.T) {
	env := setupCLITestEnv(t)
	seedMatrix(env)
	if _, _, err := runCLI(t, []string{"index", "--url", env.url("/chart")}, env.configPath); err != nil {
		t.Fatalf("index: %v", err)
	}

	out, _, err := runCLI(t, []string{"show", "nm0000206"}, env.configPath)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Keanu")
	requireContains(t, out, "1964-09-02")
	requireContains(t, out, "Filmography (1)")
	requireContains(t, out, "tt0133093 The Matrix 1999 8.7")

	out, _, err = runCLI(t, []string{"--json", "show", "nm0000206"}, env.configPath)
	if err != nil {
		t.Fatalf("show json: %v", err)
	}
	var view showView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode show: %v\n%s", err, out)
	}
	if view.Entity.FirstName != "Keanu" || view.Entity.LastName != "Reeves" {
		t.Fatalf("unexpected entity %+v", view.Entity)
	}
	if len(view.Linked) != 1 || view.Linked[0].ID != "tt0133093" {
		t.Fatalf("unexpected links %+v", view.Linked)
	}
}

func TestShowUnknownID(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"show", "tt9999999"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for uncached id")
	}
	requireContains(t, err.Error(), "not cached")
}

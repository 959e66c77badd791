package main

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"imdbooo/internal/store"
	"imdbooo/internal/testsupport"
)

func seedMatrix(env *cliTestEnv) {
	env.site.
		page("/chart", testsupport.LinkPage("tt0133093")).
		page("/title/tt0133093", testsupport.TitlePage("tt0133093", "movie", "The Matrix", 1999, "8.7", "Action", "Sci-Fi")).
		page("/title/tt0133093/fullcredits/cast", testsupport.CastPage("nm0000206")).
		page("/name/nm0000206", testsupport.PersonPage("nm0000206", "Keanu Reeves", "1964-9-2", "tt0133093"))
}

func TestIndexFromURLCachesSeedAndCast(t *testing.T) {
	env := setupCLITestEnv(t)
	seedMatrix(env)

	out, _, err := runCLI(t, []string{"index", "--url", env.url("/chart")}, env.configPath)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	if strings.TrimSpace(out) != "tt0133093 The Matrix 1999 8.7" {
		t.Fatalf("unexpected output %q", out)
	}

	out, _, err = runCLI(t, []string{"show", "tt0133093"}, env.configPath)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Cast (1)")
	requireContains(t, out, "nm0000206 Keanu Reeves")
	requireContains(t, out, "Action, Sci-Fi")

	// A second run reuses the cached title and person.
	if _, _, err := runCLI(t, []string{"index", "--url", env.url("/chart")}, env.configPath); err != nil {
		t.Fatalf("second index: %v", err)
	}
	if got := env.site.hitsFor("/title/tt0133093"); got != 1 {
		t.Fatalf("title fetched %d times, want 1", got)
	}
	if got := env.site.hitsFor("/name/nm0000206"); got != 1 {
		t.Fatalf("person fetched %d times, want 1", got)
	}
}

func TestIndexWithoutCastSkipsCastPage(t *testing.T) {
	env := setupCLITestEnv(t)
	seedMatrix(env)

	if _, _, err := runCLI(t, []string{"index", "-u", env.url("/chart"), "--without-cast"}, env.configPath); err != nil {
		t.Fatalf("index: %v", err)
	}
	if got := env.site.hitsFor("/title/tt0133093/fullcredits/cast"); got != 0 {
		t.Fatalf("cast page fetched %d times, want 0", got)
	}
}

func TestIndexFromFileWithPersonFormat(t *testing.T) {
	env := setupCLITestEnv(t)
	source := filepath.Join(env.baseDir, "saved.html")
	testsupport.WriteFile(t, source, testsupport.LinkPage("nm0000001"))
	env.site.page("/name/nm0000001", testsupport.PersonPage("nm0000001", "Cher", "1946-5-20"))

	out, _, err := runCLI(t, []string{
		"--format-person", "{firstname}|{middlename}|{lastname}|{birthdate}",
		"index", "--file", source, "--without-roles",
	}, env.configPath)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	if strings.TrimSpace(out) != "Cher|N/A|N/A|1946-05-20" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestIndexJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	seedMatrix(env)

	out, _, err := runCLI(t, []string{"--json", "index", "--url", env.url("/chart")}, env.configPath)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	var views []entityView
	if err := json.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(views))
	}
	got := views[0]
	if got.ID != "tt0133093" || got.Kind != "movie" || got.ReleaseYear != 1999 {
		t.Fatalf("unexpected view %+v", got)
	}
	if len(got.Cast) != 1 || got.Cast[0] != "nm0000206" {
		t.Fatalf("expected refreshed cast ids, got %v", got.Cast)
	}
}

func TestIndexRequiresSource(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"index"}, env.configPath); err == nil {
		t.Fatal("expected error without --url or --file")
	}
	if _, _, err := runCLI(t, []string{"index", "--url", "x", "--file", "y"}, env.configPath); err == nil {
		t.Fatal("expected error with both --url and --file")
	}
}

func TestIndexUnreachablePagePrintsNothing(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"index", "--url", env.url("/missing")}, env.configPath)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestIndexReportsHeldLock(t *testing.T) {
	env := setupCLITestEnv(t)
	seedMatrix(env)

	held, err := store.AcquireWriterLock(context.Background(), env.cfg.LockPath())
	if err != nil {
		t.Fatalf("acquire lock: %v", err)
	}
	defer held.Release()

	previous := lockWait
	lockWait = 200 * time.Millisecond
	t.Cleanup(func() { lockWait = previous })

	_, stderr, err := runCLI(t, []string{"index", "--url", env.url("/chart")}, env.configPath)
	if !errors.Is(err, store.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	requireContains(t, stderr, "event_type=cli.lock_unavailable")
	requireContains(t, stderr, `impact="command aborted"`)
	if got := env.site.hitsFor("/chart"); got != 0 {
		t.Fatalf("expected no fetch while locked, got %d", got)
	}
}

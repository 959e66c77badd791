package testsupport

import (
	"context"
	"testing"

	"imdbooo/internal/config"
	"imdbooo/internal/model"
	"imdbooo/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// MustPut inserts an entity and fails the test unless it was newly inserted.
func MustPut(t testing.TB, st *store.Store, entity *model.Entity) {
	t.Helper()

	result, err := st.Put(context.Background(), entity)
	if err != nil {
		t.Fatalf("store.Put(%s): %v", entity.ID(), err)
	}
	if result != store.Inserted {
		t.Fatalf("store.Put(%s) = %s, want inserted", entity.ID(), result)
	}
}

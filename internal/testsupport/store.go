package testsupport

import (
	"context"
	"testing"

	"filmlens/internal/config"
	"filmlens/internal/store"
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

// SeedSnapshot loads a snapshot into the store, failing the test on error.
func SeedSnapshot(t testing.TB, st *store.Store, snap *store.Snapshot) {
	t.Helper()

	if err := st.ReplaceAll(context.Background(), snap); err != nil {
		t.Fatalf("store.ReplaceAll: %v", err)
	}
}

// FloatPtr returns a pointer to value, for optional budget/revenue fields.
func FloatPtr(value float64) *float64 {
	return &value
}

// IntPtr returns a pointer to value, for optional population fields.
func IntPtr(value int64) *int64 {
	return &value
}

package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/unistay/student-housing/internal/storage"
)

func TestMemoryKVRoundTrip(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()

	if _, err := kv.Get(ctx, "missing"); !errors.Is(err, storage.ErrKeyNotFound) {
		t.Fatalf("Get on absent key returned %v; want ErrKeyNotFound", err)
	}
	if err := kv.Set(ctx, "k", "v1"); err != nil {
		t.Fatal(err)
	}
	if v, err := kv.Get(ctx, "k"); err != nil || v != "v1" {
		t.Fatalf("Get = %q, %v; want v1", v, err)
	}
	// Overwrite is last write wins.
	if err := kv.Set(ctx, "k", "v2"); err != nil {
		t.Fatal(err)
	}
	if v, _ := kv.Get(ctx, "k"); v != "v2" {
		t.Fatalf("Get after overwrite = %q; want v2", v)
	}
}

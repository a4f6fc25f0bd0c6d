package out

import (
	"context"
	"testing"

	"rovi/internal/modules/briefing/domain"
)

func TestFileQuoteCacheRoundtrip(t *testing.T) {
	t.Parallel()
	cache := NewFileQuoteCache(t.TempDir())
	ctx := context.Background()

	if _, ok, err := cache.Get(ctx, "2026-08-31"); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	want := domain.Quote{Text: "Ship it.", Author: "Ada Lovelace"}
	if err := cache.Put(ctx, "2026-08-31", want); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok, err := cache.Get(ctx, "2026-08-31")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
}

func TestFileQuoteCacheMissesStaleDay(t *testing.T) {
	t.Parallel()
	cache := NewFileQuoteCache(t.TempDir())
	ctx := context.Background()

	if err := cache.Put(ctx, "2026-08-30", domain.Quote{Text: "Old", Author: "Someone"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, ok, err := cache.Get(ctx, "2026-08-31"); err != nil || ok {
		t.Fatalf("stale day must miss: ok=%v err=%v", ok, err)
	}
}

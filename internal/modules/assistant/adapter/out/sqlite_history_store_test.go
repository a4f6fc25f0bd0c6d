package out

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"rovi/internal/modules/assistant/domain"
)

func TestSQLiteHistoryStoreRoundtrip(t *testing.T) {
	t.Parallel()
	store, err := NewSQLiteHistoryStore(filepath.Join(t.TempDir(), "rovi.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	base := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	for i, content := range []string{"hello", "hi there", "what about 11:30am?"} {
		role := domain.RoleUser
		if i%2 == 1 {
			role = domain.RoleAssistant
		}
		turn := domain.Turn{Role: role, Content: content, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := store.Append(ctx, turn); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	turns, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Content != "hi there" || turns[1].Content != "what about 11:30am?" {
		t.Fatalf("turns must be chronological: %+v", turns)
	}
	if turns[0].Role != domain.RoleAssistant {
		t.Fatalf("role lost: %+v", turns[0])
	}
	if !turns[1].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("timestamp lost: %v", turns[1].CreatedAt)
	}
}

func TestSQLiteHistoryStoreClear(t *testing.T) {
	t.Parallel()
	store, err := NewSQLiteHistoryStore(filepath.Join(t.TempDir(), "rovi.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	if err := store.Append(ctx, domain.Turn{Role: domain.RoleUser, Content: "x", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	turns, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(turns) != 0 {
		t.Fatalf("expected empty history, got %+v", turns)
	}
}

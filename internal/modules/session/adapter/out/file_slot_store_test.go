package out

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"rovi/internal/modules/session/domain"
)

func TestFileSessionStoreRoundtrip(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := NewFileSessionStore(dir)
	ctx := context.Background()

	if _, ok, err := store.Load(ctx); err != nil || ok {
		t.Fatalf("fresh dir: ok=%v err=%v", ok, err)
	}

	want := domain.NewData()
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := store.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if len(got.Meetings) != 3 || got.Expenses[0].Amount != 344 {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
	if _, err := os.Stat(filepath.Join(dir, domain.SlotSession+".json.tmp")); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind")
	}
}

func TestFileSessionStoreRejectsCorruptSlot(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, domain.SlotSession+".json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt slot: %v", err)
	}
	if _, _, err := NewFileSessionStore(dir).Load(context.Background()); err == nil {
		t.Fatalf("corrupt slot must error")
	}
}

func TestFileSessionStoreClearIsIdempotent(t *testing.T) {
	t.Parallel()
	store := NewFileSessionStore(t.TempDir())
	ctx := context.Background()
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear empty: %v", err)
	}
	if err := store.Save(ctx, domain.NewData()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, err := store.Load(ctx); err != nil || ok {
		t.Fatalf("after clear: ok=%v err=%v", ok, err)
	}
}

func TestFileOverrideStoreNormalizesOnLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, domain.SlotOverrides+".json")
	if err := os.WriteFile(path, []byte(`{"habits":{"Meditation":40}}`), 0o644); err != nil {
		t.Fatalf("write slot: %v", err)
	}
	o, ok, err := NewFileOverrideStore(dir).Load(context.Background())
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if o.Habits["Meditation"] != 40 {
		t.Fatalf("habit override lost: %+v", o)
	}
	if o.Expenses == nil || o.Prices == nil {
		t.Fatalf("missing maps must be allocated: %+v", o)
	}
}

func TestSlotForFiltersForeignFiles(t *testing.T) {
	t.Parallel()
	if _, ok := slotFor("/data/rovi.db"); ok {
		t.Fatalf("db file must not map to a slot")
	}
	if _, ok := slotFor("/data/" + domain.SlotSession + ".json.tmp"); ok {
		t.Fatalf("temp file must not map to a slot")
	}
	slot, ok := slotFor("/data/" + domain.SlotOverrides + ".json")
	if !ok || slot != domain.SlotOverrides {
		t.Fatalf("override slot not recognized: %q %v", slot, ok)
	}
}

package session

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryKV())

	rec := Record{UserID: 7, Name: "Anika", Email: "anika@example.edu", Role: "voter"}
	if err := store.Save(ctx, "k1", rec); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := store.Load(ctx, "k1")
	if got == nil {
		t.Fatal("Load returned nil after Save")
	}
	if *got != rec {
		t.Errorf("round trip mismatch: got %+v, want %+v", *got, rec)
	}
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryKV())

	_ = store.Save(ctx, "k1", Record{UserID: 1, Role: "voter"})
	_ = store.Save(ctx, "k1", Record{UserID: 2, Role: "public"})

	got := store.Load(ctx, "k1")
	if got == nil || got.UserID != 2 || got.Role != "public" {
		t.Errorf("expected second Save to win, got %+v", got)
	}
}

func TestLoadAfterClear(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryKV())

	_ = store.Save(ctx, "k1", Record{UserID: 1, Role: "voter"})
	if err := store.Clear(ctx, "k1"); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if got := store.Load(ctx, "k1"); got != nil {
		t.Errorf("Load after Clear = %+v, want nil", got)
	}
}

func TestLoadMissingKey(t *testing.T) {
	store := NewStore(NewMemoryKV())
	if got := store.Load(context.Background(), "nope"); got != nil {
		t.Errorf("Load of absent key = %+v, want nil", got)
	}
}

func TestLoadCorruptedValue(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	store := NewStore(kv)

	_ = kv.Set(ctx, currentUserKey+"k1", "{not json")
	if got := store.Load(ctx, "k1"); got != nil {
		t.Errorf("Load over corrupted value = %+v, want nil", got)
	}
}

func TestLanguagePreference(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryKV())

	if got := store.Language(ctx, "7", "bn"); got != "bn" {
		t.Errorf("default language = %q, want bn", got)
	}
	_ = store.SaveLanguage(ctx, "7", "en")
	if got := store.Language(ctx, "7", "bn"); got != "en" {
		t.Errorf("stored language = %q, want en", got)
	}
}

func TestHistoryNewestFirstAndScoped(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryKV())

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	_ = store.AppendHistory(ctx, "7", HistoryEntry{UserID: 7, ElectionID: 1, Timestamp: base})
	_ = store.AppendHistory(ctx, "7", HistoryEntry{UserID: 7, ElectionID: 2, Timestamp: base.Add(time.Hour)})
	_ = store.AppendHistory(ctx, "8", HistoryEntry{UserID: 8, ElectionID: 3, Timestamp: base})

	got := store.History(ctx, "7")
	if len(got) != 2 {
		t.Fatalf("history length = %d, want 2", len(got))
	}
	if got[0].ElectionID != 2 || got[1].ElectionID != 1 {
		t.Errorf("history not newest first: %+v", got)
	}
}

func TestHistoryConcurrentAppendsKeepEveryEntry(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryKV())

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	const n = 16

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entry := HistoryEntry{UserID: 7, ElectionID: uint(i + 1), Timestamp: base.Add(time.Duration(i) * time.Minute)}
			if err := store.AppendHistory(ctx, "7", entry); err != nil {
				t.Errorf("AppendHistory failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if got := store.History(ctx, "7"); len(got) != n {
		t.Errorf("history length = %d, want %d", len(got), n)
	}
}

func TestHistoryCorruptedLogReadsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	store := NewStore(kv)

	_ = kv.Set(ctx, voteHistoryKey+"7", "[broken")
	if got := store.History(ctx, "7"); got != nil {
		t.Errorf("corrupted history = %+v, want nil", got)
	}
}

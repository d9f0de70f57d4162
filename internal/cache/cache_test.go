package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestKeyIsDeterministic(t *testing.T) {
	a := Key("script text", "quality")
	b := Key("script text", "quality")
	if a != b {
		t.Fatalf("keys differ: %s vs %s", a, b)
	}
	if a == Key("other text", "quality") {
		t.Fatal("different inputs produced the same key")
	}
	if len(a) != 16 {
		t.Fatalf("key length = %d, want 16", len(a))
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	c := New(t.TempDir())
	key := Key("script", "quality")

	if _, ok := c.Get(key, "quality"); ok {
		t.Fatal("expected miss before put")
	}

	payload := map[string]int{"overall_score": 82}
	if err := c.Put(key, "quality", payload); err != nil {
		t.Fatalf("put: %v", err)
	}

	raw, ok := c.Get(key, "quality")
	if !ok {
		t.Fatal("expected hit after put")
	}
	var got map[string]int
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal cached payload: %v", err)
	}
	if got["overall_score"] != 82 {
		t.Fatalf("cached payload = %v", got)
	}

	stats := c.Snapshot()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("stats = %d hits / %d misses, want 1/1", stats.Hits, stats.Misses)
	}
	if stats.HitRate != 0.5 {
		t.Errorf("hit rate = %v, want 0.5", stats.HitRate)
	}
	if cs := stats.ByCategory["quality"]; cs.Hits != 1 || cs.Misses != 1 {
		t.Errorf("category stats = %+v, want 1/1", cs)
	}
}

func TestExpiredEntryIsRemovedOnRead(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)
	key := Key("old", "quality")

	stale, _ := json.Marshal(envelope{
		CachedAt: time.Now().UTC().Add(-30 * 24 * time.Hour),
		Data:     json.RawMessage(`{"overall_score":10}`),
	})
	if err := os.MkdirAll(filepath.Join(dir, "quality"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, "quality", key+".json")
	if err := os.WriteFile(path, stale, 0o644); err != nil {
		t.Fatalf("write stale entry: %v", err)
	}

	if _, ok := c.Get(key, "quality"); ok {
		t.Fatal("expected expired entry to miss")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("expected expired entry to be deleted")
	}
}

func TestCleanupRemovesExpiredOnly(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)

	fresh := Key("fresh", "sentiment")
	if err := c.Put(fresh, "sentiment", map[string]string{"overall_sentiment": "neutral"}); err != nil {
		t.Fatalf("put fresh: %v", err)
	}

	stale, _ := json.Marshal(envelope{CachedAt: time.Now().UTC().Add(-30 * 24 * time.Hour)})
	stalePath := filepath.Join(dir, "sentiment", Key("stale", "sentiment")+".json")
	if err := os.WriteFile(stalePath, stale, 0o644); err != nil {
		t.Fatalf("write stale: %v", err)
	}

	removed, err := c.Cleanup()
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if _, ok := c.Get(fresh, "sentiment"); !ok {
		t.Fatal("fresh entry should survive cleanup")
	}
}

func TestClearCategory(t *testing.T) {
	c := New(t.TempDir())
	for _, name := range []string{"a", "b"} {
		if err := c.Put(Key(name), "quality", name); err != nil {
			t.Fatalf("put %s: %v", name, err)
		}
	}

	removed, err := c.Clear("quality")
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}

	removed, err = c.Clear("missing")
	if err != nil || removed != 0 {
		t.Fatalf("clear missing = %d/%v, want 0/nil", removed, err)
	}
}

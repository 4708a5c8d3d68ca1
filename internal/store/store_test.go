package store

import (
	"context"
	"reflect"
	"testing"
	"time"

	"clipseek/internal/testsupport"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func TestSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	words := testsupport.Words(t,
		"get", 0.0, 0.2,
		"to", 0.2, 0.4,
		"ten", 0.4, 0.6,
		"million", 0.6, 0.9,
	)

	if err := s.Save(ctx, "vid123", words); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, ok, err := s.Get(ctx, "vid123")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Get reported no entry after Save")
	}
	if !reflect.DeepEqual(got, words) {
		t.Errorf("round trip mismatch: %+v vs %+v", got, words)
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)
	_, ok, err := s.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("ok = true for missing entry")
	}
}

func TestSaveReplaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := testsupport.Words(t, "old", 0.0, 0.5)
	second := testsupport.Words(t, "new", 0.0, 0.3, "words", 0.3, 0.7)
	if err := s.Save(ctx, "vid", first); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, "vid", second); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.Get(ctx, "vid")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if len(got) != 2 || got[0].Text != "new" {
		t.Errorf("entry not replaced: %+v", got)
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("entry count = %d, want 1 after replace", len(entries))
	}
}

func TestListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"first", "second", "third"} {
		if err := s.Save(ctx, id, testsupport.Words(t, "w", 0.0, 0.1)); err != nil {
			t.Fatal(err)
		}
		// created_at carries nanosecond precision; a small gap keeps the
		// ordering deterministic.
		time.Sleep(2 * time.Millisecond)
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entry count = %d, want 3", len(entries))
	}
	if entries[0].VideoID != "third" || entries[2].VideoID != "first" {
		t.Errorf("order = %s, %s, %s; want newest first",
			entries[0].VideoID, entries[1].VideoID, entries[2].VideoID)
	}
	if entries[0].WordCount != 1 {
		t.Errorf("word count = %d, want 1", entries[0].WordCount)
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("created at not parsed")
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "vid", testsupport.Words(t, "w", 0.0, 0.1)); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, "vid"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "vid"); ok {
		t.Error("entry survived Delete")
	}
	if err := s.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("Delete(absent): %v", err)
	}
}

func TestClear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		if err := s.Save(ctx, id, testsupport.Words(t, "w", 0.0, 0.1)); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entry count = %d after Clear", len(entries))
	}
}

func TestOpenRejectsSecondProcess(t *testing.T) {
	dir := t.TempDir()
	first, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer first.Close()

	if second, err := Open(dir); err == nil {
		second.Close()
		t.Fatal("second Open on locked directory succeeded")
	}
}

func TestReopenAfterClose(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Save(ctx, "vid", testsupport.Words(t, "w", 0.0, 0.1)); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if _, ok, err := reopened.Get(ctx, "vid"); err != nil || !ok {
		t.Errorf("entry lost across reopen: ok=%v err=%v", ok, err)
	}
}

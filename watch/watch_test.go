package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcherDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boxframe.yaml")
	if err := os.WriteFile(path, []byte("a: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	changed := make(chan struct{}, 8)
	w := NewFileWatcher(path, 50*time.Millisecond, func() {
		calls.Add(1)
		changed <- struct{}{}
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	for i := range 3 {
		if err := os.WriteFile(path, []byte{'b', byte('0' + i), '\n'}, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}
	time.Sleep(200 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("onChange called %d times, want 1", got)
	}

	cancel()
	select {
	case <-w.Done():
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boxframe.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	w := NewFileWatcher(path, 20*time.Millisecond, func() { calls.Add(1) }, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("onChange called %d times for a sibling file", got)
	}
}

func TestStartMissingDirectory(t *testing.T) {
	w := NewFileWatcher(filepath.Join(t.TempDir(), "nope", "boxframe.yaml"), 0, func() {}, nil)
	if err := w.Start(context.Background()); err == nil {
		t.Error("expected error watching a missing directory")
	}
}

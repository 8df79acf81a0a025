package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/felixgeelhaar/cowork/internal/infrastructure/watch"
)

func TestDebouncerCoalescesRapidTriggers(t *testing.T) {
	var fired atomic.Int32
	d := watch.NewDebouncer(50*time.Millisecond, func() {
		fired.Add(1)
	})
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Trigger()
	}

	time.Sleep(200 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("expected 1 callback, got %d", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	var fired atomic.Int32
	d := watch.NewDebouncer(50*time.Millisecond, func() {
		fired.Add(1)
	})

	d.Trigger()
	d.Stop()

	time.Sleep(150 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("expected no callback after Stop, got %d", got)
	}
}

func TestLedgerWatcherFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sales.json")
	if err := os.WriteFile(path, []byte("[]"), 0600); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	changed := make(chan struct{}, 1)
	w, err := watch.NewLedgerWatcher(path, 20*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewLedgerWatcher failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte(`[{"id":"x"}]`), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("expected change notification")
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLedgerWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sales.json")

	changed := make(chan struct{}, 1)
	w, err := watch.NewLedgerWatcher(path, 20*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewLedgerWatcher failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "clients.json"), []byte("{}"), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	select {
	case <-changed:
		t.Fatal("unexpected notification for unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

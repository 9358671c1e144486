package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsSpec(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	if err := os.MkdirAll(filepath.Join(dir, "scripts"), 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, DefaultSpecFile)
	if err := os.WriteFile(path, []byte("screen:\n  width: 400\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(DefaultSpecFile)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("screen:\n  width: 640\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case spec := <-w.Specs:
		if spec.Screen.Width != 640 {
			t.Fatalf("reloaded width %v, want 640", spec.Screen.Width)
		}
	case err := <-w.Errors:
		t.Fatalf("unexpected error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for reload")
	}

	if err := os.WriteFile(path, []byte("pools:\n  platform_capacity: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case spec := <-w.Specs:
		t.Fatalf("invalid spec delivered: %+v", spec.Pools)
	case err := <-w.Errors:
		if err == nil {
			t.Fatalf("expected a decode error")
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for error")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(DefaultSpecFile, dir)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if _, ok := <-w.Specs; ok {
		t.Fatalf("specs channel should be closed")
	}
}

package pathwatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const timeout = 5 * time.Second

func expectChange(t *testing.T, w *Watcher, what string) {
	t.Helper()
	select {
	case <-w.Changes():
	case err := <-w.Errors():
		t.Fatalf("%s: %v", what, err)
	case <-time.After(timeout):
		t.Fatalf("%s: no change notification after %v", what, timeout)
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.toml")
	w, err := Watch(name)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(name, []byte("Prompt = \"$ \"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	expectChange(t, w, "create")

	// Drain notifications from the create before checking that unrelated files are ignored.
	time.Sleep(100 * time.Millisecond)
	select {
	case <-w.Changes():
	default:
	}
	if err := os.WriteFile(filepath.Join(dir, "other"), nil, 0600); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Changes():
		t.Error("got notification for a different file")
	case <-time.After(200 * time.Millisecond):
	}

	if err := os.Remove(name); err != nil {
		t.Fatal(err)
	}
	expectChange(t, w, "remove")
}

func TestWatchMissingDir(t *testing.T) {
	if _, err := Watch(filepath.Join(t.TempDir(), "nope", "config.toml")); err == nil {
		t.Error("watching a file in a nonexistent directory succeeded")
	}
}

package manify_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/manify/pkg/manify"
)

func TestDirPageStore(t *testing.T) {
	t.Parallel()

	t.Run("commits page on close", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "man3")
		store := manify.NewDirPageStore(context.Background(), dir, 3)

		page, err := store.Open("bfromcstr")
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if _, err := page.Write([]byte(".TH BFROMCSTR 3\n")); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		// Nothing is on disk until the page is closed.
		path := filepath.Join(dir, "bfromcstr.3")
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("page committed before Close")
		}

		if err := page.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != ".TH BFROMCSTR 3\n" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("records paths in order", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "man3")
		store := manify.NewDirPageStore(context.Background(), dir, 3)

		for _, name := range []string{"bstrA", "bstrB"} {
			page, err := store.Open(name)
			if err != nil {
				t.Fatalf("Open(%s) error = %v", name, err)
			}
			if err := page.Close(); err != nil {
				t.Fatalf("Close(%s) error = %v", name, err)
			}
		}

		paths := store.Paths()
		want := []string{
			filepath.Join(dir, "bstrA.3"),
			filepath.Join(dir, "bstrB.3"),
		}
		if len(paths) != 2 || paths[0] != want[0] || paths[1] != want[1] {
			t.Errorf("Paths() = %v, want %v", paths, want)
		}
	})

	t.Run("creates directory on first open", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "deep", "man5")
		store := manify.NewDirPageStore(context.Background(), dir, 5)

		page, err := store.Open("bstrA")
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if err := page.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}

		if _, err := os.Stat(filepath.Join(dir, "bstrA.5")); err != nil {
			t.Errorf("page not written: %v", err)
		}
	})
}

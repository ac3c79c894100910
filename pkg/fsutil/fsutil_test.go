package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/manify/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "doc.txt")
		if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		got, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != "hello" {
			t.Errorf("content = %q, want %q", got, "hello")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		_, err := fsutil.ReadFile(context.Background(), filepath.Join(dir, "absent.txt"))
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Fatalf("ReadFile() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("directory path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		_, err := fsutil.ReadFile(context.Background(), dir)
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Fatalf("ReadFile() error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fsutil.ReadFile(ctx, "anything")
		if err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	t.Run("creates nested directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		target := filepath.Join(dir, "a", "b", "man3")
		if err := fsutil.EnsureDir(target); err != nil {
			t.Fatalf("EnsureDir() error = %v", err)
		}

		stat, err := os.Stat(target)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if !stat.IsDir() {
			t.Error("target is not a directory")
		}
	})

	t.Run("existing directory is fine", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := fsutil.EnsureDir(dir); err != nil {
			t.Fatalf("EnsureDir() error = %v", err)
		}
	})
}

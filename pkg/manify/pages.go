package manify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/yaklabco/manify/pkg/fsutil"
)

// Page is one per-symbol output destination. It is open from the moment a
// function header is recognized until its body's terminator is seen; at
// most one Page is open at a time.
type Page interface {
	io.Writer
	io.Closer
}

// PageOpener opens the per-symbol destination for one documented symbol.
// The DirPageStore implementation writes real files; tests substitute an
// in-memory one.
type PageOpener interface {
	Open(name string) (Page, error)
}

// DirPageStore opens per-symbol pages as files in a single directory,
// creating the directory on first use. Each page is buffered in memory and
// committed atomically when closed, so an aborted run never leaves a
// half-written page behind.
type DirPageStore struct {
	ctx     context.Context
	dir     string
	section int
	created bool
	paths   []string
}

// NewDirPageStore creates a store writing `<dir>/<name>.<section>` pages.
func NewDirPageStore(ctx context.Context, dir string, section int) *DirPageStore {
	return &DirPageStore{ctx: ctx, dir: dir, section: section}
}

// Open creates the page for name.
func (s *DirPageStore) Open(name string) (Page, error) {
	if !s.created {
		if err := fsutil.EnsureDir(s.dir); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrResourceFailure, err)
		}
		s.created = true
	}
	path := filepath.Join(s.dir, fmt.Sprintf("%s.%d", name, s.section))
	s.paths = append(s.paths, path)
	return &atomicPage{ctx: s.ctx, path: path}, nil
}

// Paths returns the paths of all pages opened so far, in order.
func (s *DirPageStore) Paths() []string {
	return s.paths
}

type atomicPage struct {
	ctx  context.Context
	path string
	buf  bytes.Buffer
}

func (p *atomicPage) Write(b []byte) (int, error) {
	return p.buf.Write(b)
}

func (p *atomicPage) Close() error {
	if err := fsutil.WriteAtomic(p.ctx, p.path, p.buf.Bytes(), 0); err != nil {
		return fmt.Errorf("%w: commit %s: %w", ErrResourceFailure, p.path, err)
	}
	return nil
}

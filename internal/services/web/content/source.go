package content

import (
	"strings"
	"sync/atomic"
)

// Source serves the current catalog and swaps it atomically on reload.
type Source struct {
	path    string
	current atomic.Pointer[Catalog]
}

// NewStaticSource returns a source that always serves catalog.
func NewStaticSource(catalog Catalog) *Source {
	s := &Source{}
	normalized := catalog.Normalize()
	s.current.Store(&normalized)
	return s
}

// Open builds a source from a content file, or from Default when path is empty.
func Open(path string) (*Source, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return NewStaticSource(Default()), nil
	}
	catalog, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	s := &Source{path: path}
	s.current.Store(&catalog)
	return s, nil
}

// Path returns the backing file, or "" for static sources.
func (s *Source) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Catalog returns the current catalog.
func (s *Source) Catalog() Catalog {
	if s == nil {
		return Default().Normalize()
	}
	current := s.current.Load()
	if current == nil {
		return Default().Normalize()
	}
	return *current
}

// Reload re-reads the backing file. On error the previous catalog is kept.
func (s *Source) Reload() error {
	if s == nil || s.path == "" {
		return nil
	}
	catalog, err := LoadFile(s.path)
	if err != nil {
		return err
	}
	s.current.Store(&catalog)
	return nil
}

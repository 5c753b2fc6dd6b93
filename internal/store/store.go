// Package store persists the application document as a single JSON
// file with atomic read-modify-write semantics.
//
// Update serializes concurrent mutations behind one mutex, which is
// the request-level serialization the pure core functions assume: a
// read from one request can never interleave with a write from
// another, so no update is silently lost.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"counter/internal/domain"
)

type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the document from disk. A missing file resolves to a
// defaulted empty document, and partially populated files get their
// gaps filled in, so callers always see a complete document.
func (s *Store) Load() (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (domain.Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.Document{}.Normalized(), nil
	}
	if err != nil {
		return domain.Document{}, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Document{}, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return doc.Normalized(), nil
}

func (s *Store) save(doc domain.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	// Write to a sibling temp file and rename so a crash mid-write
	// never leaves a truncated document behind.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".counter-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

// Update runs fn inside a single atomic read-modify-write cycle and
// persists the document fn returns. When fn fails the stored document
// is left untouched.
func (s *Store) Update(fn func(domain.Document) (domain.Document, error)) (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return domain.Document{}, err
	}

	next, err := fn(doc)
	if err != nil {
		return domain.Document{}, err
	}

	if err := s.save(next); err != nil {
		return domain.Document{}, err
	}
	return next, nil
}

package storage

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Storer provides read access to a collection of validated content specs.
// World content is loaded once at startup and never written back; the
// simulation holds no state across process restarts.
type Storer[T ValidatingSpec] interface {
	Get(Identifier) T
	GetAll() map[Identifier]T
}

// FileStore loads every *.json asset under a directory tree into memory.
// Loading is strict: a single malformed, invalid, or duplicate asset fails
// the whole store so content errors surface at startup, not mid-game.
type FileStore[T ValidatingSpec] struct {
	path    string
	records map[Identifier]T
}

func NewFileStore[T ValidatingSpec](path string) (*FileStore[T], error) {
	s := &FileStore[T]{
		path:    path,
		records: map[Identifier]T{},
	}

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || filepath.Ext(p) != ".json" {
			return nil
		}
		return s.loadAsset(p)
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FileStore[T]) loadAsset(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	var asset Asset[T]
	if err := json.Unmarshal(data, &asset); err != nil {
		return fmt.Errorf("unmarshalling %s: %w", filepath.Base(path), err)
	}

	if err := asset.Validate(); err != nil {
		return fmt.Errorf("validating %s: %w", filepath.Base(path), err)
	}

	if _, exists := s.records[asset.Id()]; exists {
		return fmt.Errorf("duplicate asset id %q in %s", asset.Id(), filepath.Base(path))
	}
	s.records[asset.Id()] = asset.Spec

	return nil
}

func (s *FileStore[T]) Get(id Identifier) T {
	val, ok := s.records[id]
	if !ok {
		var nilVal T
		return nilVal
	}
	return val
}

func (s *FileStore[T]) GetAll() map[Identifier]T {
	vals := make(map[Identifier]T, len(s.records))
	for id, v := range s.records {
		vals[id] = v
	}
	return vals
}

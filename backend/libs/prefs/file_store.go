package prefs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStore keeps preferences of all owners in one YAML document.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by the file at path. The file is
// created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

type fileDocument struct {
	Owners map[string]Preferences `yaml:"owners"`
}

// Load implements Store.
func (s *FileStore) Load(_ context.Context, owner string) (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return Preferences{}, err
	}
	p, ok := doc.Owners[owner]
	if !ok {
		return Default(), nil
	}
	if p.Validate() != nil {
		p.SlotOrder = Default().SlotOrder
	}
	return p, nil
}

// Save implements Store.
func (s *FileStore) Save(_ context.Context, owner string, p Preferences) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.Owners[owner] = p

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("prefs: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("prefs: create dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("prefs: write: %w", err)
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) read() (fileDocument, error) {
	doc := fileDocument{Owners: map[string]Preferences{}}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("prefs: read %s: %w", s.path, err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("prefs: decode %s: %w", s.path, err)
	}
	if doc.Owners == nil {
		doc.Owners = map[string]Preferences{}
	}
	return doc, nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/danielhkuo/fit-journal/models"
)

// Store persists the entire FitnessDocument as one JSON file. There is
// no locking between concurrent saves and no merge: the last writer
// fully wins, with atomicity bounded by what os.WriteFile provides.
type Store struct {
	path string
}

// Open returns a store backed by the given file path. The file is not
// touched until the first Load or Save.
func Open(path string) *Store {
	return &Store{path: path}
}

// Path returns the document file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads and parses the persisted document. On first run (file does
// not exist) it seeds the default document, persists it, and returns it.
// A file that exists but fails to parse is a returned error, never
// silently replaced.
func (s *Store) Load() (*models.FitnessDocument, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		doc := DefaultDocument()
		if err := s.Save(doc); err != nil {
			return nil, fmt.Errorf("seed document: %w", err)
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var doc models.FitnessDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &doc, nil
}

// Save serializes the full document and overwrites the persisted copy.
func (s *Store) Save(doc *models.FitnessDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

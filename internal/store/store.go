package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mhartig/tsheet/internal/model"
)

// BaseDir returns the root data directory (~/.tsheet).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".tsheet"), nil
}

// DefaultPath returns the path of the persisted timesheet document.
func DefaultPath() (string, error) {
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "timesheet.json"), nil
}

// Load reads the persisted Document from path. Any failure mode — missing
// file, unreadable file, corrupt JSON, or a document without an entries
// sequence — degrades to the empty Document. A corrupt file is renamed to
// <path>.corrupt first so the bad data is kept around for inspection.
func Load(path string) model.Document {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.EmptyDocument()
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		_ = os.Rename(path, path+".corrupt")
		return model.EmptyDocument()
	}
	if doc.Entries == nil {
		return model.EmptyDocument()
	}
	return doc
}

// Save atomically writes the Document to path, replacing any prior
// snapshot: the JSON is written to a temp file and renamed into place.
func Save(path string, doc model.Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for tsheet, stored in
// ~/.tsheet/config.json. The file supports single-line // comments for
// documentation purposes.
type Config struct {
	// DefaultEmployee is used by `tsheet add` when --employee is omitted.
	DefaultEmployee string `json:"default_employee"`
	// DataFile overrides the path of the persisted timesheet document.
	// Empty means ~/.tsheet/timesheet.json.
	DataFile string `json:"data_file"`
}

// configTemplate is the annotated config written on first run. Lines whose
// trimmed content starts with // are stripped before JSON parsing, allowing
// human-readable documentation inside the file.
const configTemplate = `// tsheet configuration – ~/.tsheet/config.json
//
// All settings are optional. Edit this file to customise tsheet behaviour.
{
  // Employee name used when "tsheet add" is run without --employee.
  "default_employee": "",

  // Path of the timesheet data file. Leave empty for the default
  // location (~/.tsheet/timesheet.json).
  "data_file": ""
}
`

// configFilePath returns the path to ~/.tsheet/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".tsheet", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content
// starts with //. Only full-line comments are handled; inline comments are
// not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.tsheet/config.json, creating it with annotated defaults on
// first run. Lines starting with // are treated as comments and stripped
// before JSON parsing.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover
		// the options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated
// default config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/mhartig/tsheet/internal/config"
	"github.com/mhartig/tsheet/internal/model"
	"github.com/mhartig/tsheet/internal/store"
)

// loadConfig reads the config file, downgrading problems to a warning so
// commands still work with defaults.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return cfg
}

// dataPath resolves the timesheet document location, honouring the
// data_file config override.
func dataPath(cfg config.Config) string {
	if cfg.DataFile != "" {
		return cfg.DataFile
	}
	path, err := store.DefaultPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return path
}

// mustSave persists the Document or exits with the storage error.
func mustSave(path string, doc model.Document) {
	if err := store.Save(path, doc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

// confirm shows a yes/no prompt and returns the answer. A prompt that
// cannot run (no TTY) counts as "no" so destructive commands fail safe;
// scripts use the --yes flags instead.
func confirm(title string) bool {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return false
	}
	return ok
}

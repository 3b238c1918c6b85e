package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhartig/tsheet/internal/store"
)

var (
	exportOutput string
	exportStdout bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the timesheet to a dated JSON file",
	Long: `Write the full timesheet document, pretty-printed, to
timesheet-YYYY-MM-DD.json in the current directory. The file can later be
re-imported with "tsheet import", here or on another machine.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to this path instead of the dated default")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write to stdout instead of a file")
}

func runExport(cmd *cobra.Command, args []string) error {
	path := dataPath(loadConfig())
	doc := store.Load(path)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
		os.Exit(2)
	}

	if exportStdout {
		fmt.Println(string(data))
		return nil
	}

	out := exportOutput
	if out == "" {
		out = fmt.Sprintf("timesheet-%s.json", time.Now().Format("2006-01-02"))
	}
	if err := os.WriteFile(out, append(data, '\n'), 0o600); err != nil {
		fmt.Fprintln(os.Stderr, "error writing export file:", err)
		os.Exit(2)
	}

	fmt.Printf("Exported %d entries to %s.\n", len(doc.Entries), out)
	return nil
}

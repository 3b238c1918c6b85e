package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhartig/tsheet/internal/model"
	"github.com/mhartig/tsheet/internal/store"
	"github.com/mhartig/tsheet/internal/timecalc"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show per-day and weekly hour totals",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "table", "Output format: table, csv, json")
}

func runReport(cmd *cobra.Command, args []string) error {
	path := dataPath(loadConfig())
	doc := store.Load(path)
	totals := timecalc.Aggregate(doc.Entries)

	switch reportFormat {
	case "csv":
		fmt.Println("day,hours")
		for _, day := range model.Weekdays {
			fmt.Printf("%s,%s\n", csvEscape(day), timecalc.RoundedHours(totals.PerDay[day]))
		}
		fmt.Printf("total,%s\n", timecalc.RoundedHours(totals.Weekly))
	case "json":
		out := struct {
			PerDay map[string]string `json:"perDay"`
			Weekly string            `json:"weeklyTotal"`
		}{
			PerDay: make(map[string]string, len(model.Weekdays)),
			Weekly: timecalc.RoundedHours(totals.Weekly),
		}
		for _, day := range model.Weekdays {
			out.PerDay[day] = timecalc.RoundedHours(totals.PerDay[day])
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		fmt.Println(string(data))
	default: // table
		for _, day := range model.Weekdays {
			fmt.Printf("%-12s%sh\n", day, timecalc.RoundedHours(totals.PerDay[day]))
		}
		fmt.Println("--------------------")
		fmt.Printf("%-12s%sh\n", "Total", timecalc.RoundedHours(totals.Weekly))
	}

	return nil
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}

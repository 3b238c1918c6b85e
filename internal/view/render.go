package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleDay    = lipgloss.NewStyle().Foreground(lipgloss.Color("#fe8019")).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	styleHours  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c"))
	styleWeekly = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c")).Bold(true)
)

// Render produces the full weekly timesheet as styled terminal text:
// entries under the seven weekday headings with per-row hours, a total per
// day, and the weekly total at the bottom.
func Render(vm Model) string {
	var b strings.Builder

	if vm.EntryCount == 0 {
		b.WriteString("No entries yet. Add one with: tsheet add\n")
	}

	for _, day := range vm.Days {
		if len(day.Rows) == 0 {
			continue
		}
		b.WriteString(styleDay.Render(day.Day))
		b.WriteString("\n")

		width := employeeColWidth(day.Rows)
		for _, r := range day.Rows {
			line := fmt.Sprintf("  %s  %-*s  %s–%s  %sh",
				styleDim.Render(r.ShortID),
				width, r.Employee,
				r.TimeIn, r.TimeOut,
				styleHours.Render(r.Hours),
			)
			if r.Notes != "" {
				line += "  " + styleDim.Render(r.Notes)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString(styleDim.Render(fmt.Sprintf("  %s total: %sh", day.Day, day.TotalHours)))
		b.WriteString("\n\n")
	}

	b.WriteString(styleWeekly.Render(fmt.Sprintf("Weekly total: %sh", vm.WeeklyHours)))
	b.WriteString("\n")
	return b.String()
}

func employeeColWidth(rows []Row) int {
	width := 0
	for _, r := range rows {
		if w := lipgloss.Width(r.Employee); w > width {
			width = w
		}
	}
	return width
}

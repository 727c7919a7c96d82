package verify

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteReport writes the issues as a table. A clean program gets a single
// line instead.
func WriteReport(w io.Writer, name string, issues []Issue) error {
	if len(issues) == 0 {
		_, err := fmt.Fprintf(w, "%s: no lint issues found\n", name)
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("Lint %s", name))
	t.AppendHeader(table.Row{"#", "Type", "Line", "Column", "Message"})

	for i, issue := range issues {
		t.AppendRow(table.Row{i + 1, issue.Type, issue.Pos.Line, issue.Pos.Column, issue.Message})
	}

	t.AppendFooter(table.Row{"", "Total", len(issues), "", ""})
	t.Render()

	return nil
}

// SaveReportToFile writes the report to the named file.
func SaveReportToFile(filename, name string, issues []Issue) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	return WriteReport(file, name, issues)
}

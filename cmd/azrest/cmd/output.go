package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// tableView is a rendering of a result as rows.
type tableView struct {
	headers []string
	rows    [][]string
}

// render writes v as indented JSON, or view as a table.
func (o *options) render(w io.Writer, v any, view tableView) error {
	if o.output == outputJSON {
		return writeJSON(w, v)
	}
	if len(view.rows) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}
	_, err := fmt.Fprintln(w, renderTable(view))
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderTable(view tableView) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(view.headers...).
		Rows(view.rows...).
		String()
}

// str dereferences an optional string for display.
func str[T ~string](p *T) string {
	if p == nil {
		return ""
	}
	return string(*p)
}

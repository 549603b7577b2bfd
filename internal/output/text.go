package output

import (
	"fmt"
	"io"
	"strings"
)

// Table renders left-aligned columnar text for the list command.
// Column widths settle when Render runs, so rows can be added in any
// order.
type Table struct {
	w       io.Writer
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(w io.Writer, headers ...string) *Table {
	return &Table{w: w, headers: headers}
}

// AddRow appends one row. Missing trailing cells render empty.
func (t *Table) AddRow(cols ...string) {
	t.rows = append(t.rows, cols)
}

// Render writes the headers, a dashed separator, and every row.
func (t *Table) Render() {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, c := range row {
			if i < len(widths) && len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
	}

	writeRow := func(cells func(i int) string) {
		var b strings.Builder
		for i, w := range widths {
			b.WriteString("  ")
			fmt.Fprintf(&b, "%-*s", w, cells(i))
		}
		fmt.Fprintln(t.w, strings.TrimRight(b.String(), " "))
	}

	writeRow(func(i int) string { return t.headers[i] })
	writeRow(func(i int) string { return strings.Repeat("-", widths[i]) })
	for _, row := range t.rows {
		writeRow(func(i int) string {
			if i < len(row) {
				return row[i]
			}
			return ""
		})
	}
}

// Truncate shortens s to at most maxLen runes, ending in "..." when
// anything was cut.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// Pluralize picks the singular or plural form for count.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// CountStr renders "N card" / "N cards" style counts.
func CountStr(count int, singular, plural string) string {
	return fmt.Sprintf("%d %s", count, Pluralize(count, singular, plural))
}

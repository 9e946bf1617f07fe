// Package hypertext renders small HTML fragments, primarily tables, for
// embedding in reports and notebook-style output.
package hypertext

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/Kirill-Lekhov/notalib/apperr"
)

// Table is a rectangular data set renderable as an HTML <table>. Headers may
// be empty, in which case no header row is written.
type Table struct {
	Headers []string
	Rows    [][]string
}

// FromMaps builds a table from string-keyed rows, selecting the given
// columns in order. Missing cells render empty.
func FromMaps(columns []string, rows []map[string]string) Table {
	t := Table{Headers: columns}
	for _, r := range rows {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = r[c]
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Write renders the table as HTML. All cell content is escaped; write errors
// propagate to the caller.
func (t Table) Write(w io.Writer) error {
	if _, err := io.WriteString(w, "<table>\n"); err != nil {
		return apperr.Wrap("hypertext.Write", apperr.External, err, "write table")
	}
	if len(t.Headers) > 0 {
		if err := writeRow(w, "th", t.Headers); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if err := writeRow(w, "td", row); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</table>\n"); err != nil {
		return apperr.Wrap("hypertext.Write", apperr.External, err, "write table")
	}
	return nil
}

// String renders the table to a string.
func (t Table) String() string {
	var b strings.Builder
	_ = t.Write(&b)
	return b.String()
}

func writeRow(w io.Writer, cell string, values []string) error {
	var b strings.Builder
	b.WriteString("<tr>")
	for _, v := range values {
		fmt.Fprintf(&b, "<%s>%s</%s>", cell, html.EscapeString(v), cell)
	}
	b.WriteString("</tr>\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return apperr.Wrap("hypertext.writeRow", apperr.External, err, "write table row")
	}
	return nil
}

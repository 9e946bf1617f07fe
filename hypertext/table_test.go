package hypertext

import (
	"errors"
	"strings"
	"testing"
)

func TestTableWrite(t *testing.T) {
	tbl := Table{
		Headers: []string{"name", "age"},
		Rows:    [][]string{{"ann", "30"}, {"bob", "25"}},
	}
	got := tbl.String()
	want := "<table>\n" +
		"<tr><th>name</th><th>age</th></tr>\n" +
		"<tr><td>ann</td><td>30</td></tr>\n" +
		"<tr><td>bob</td><td>25</td></tr>\n" +
		"</table>\n"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestTableEscapesCells(t *testing.T) {
	tbl := Table{Rows: [][]string{{`<script>alert("x")</script>`}}}
	got := tbl.String()
	if strings.Contains(got, "<script>") {
		t.Fatalf("unescaped markup in output: %s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Fatalf("expected escaped markup, got: %s", got)
	}
}

func TestTableWithoutHeaders(t *testing.T) {
	tbl := Table{Rows: [][]string{{"x"}}}
	if got := tbl.String(); strings.Contains(got, "<th>") {
		t.Fatalf("unexpected header row: %s", got)
	}
}

func TestFromMaps(t *testing.T) {
	tbl := FromMaps([]string{"a", "b"}, []map[string]string{
		{"a": "1", "b": "2"},
		{"a": "3"},
	})
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows: got %d want 2", len(tbl.Rows))
	}
	if tbl.Rows[1][1] != "" {
		t.Fatalf("missing cell should be empty, got %q", tbl.Rows[1][1])
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteErrorPropagates(t *testing.T) {
	if err := (Table{Rows: [][]string{{"x"}}}).Write(failingWriter{}); err == nil {
		t.Fatal("want write error")
	}
}

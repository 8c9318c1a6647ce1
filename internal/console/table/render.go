package table

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Cell returns the display content of col for rec. Field accessors render the
// raw value (nil as ""), computed accessors run their function.
func Cell(rec Record, col Column) string {
	switch a := col.Accessor.(type) {
	case FieldAccessor:
		return stringify(rec[a.Name])
	case ComputedAccessor:
		return a.Fn(rec)
	default:
		return ""
	}
}

// Render writes the current view as an aligned text table: header row with a
// sort marker, data rows (or the empty-state message), and a pagination
// footer with the visible page window.
func (t *Table) Render(w io.Writer) {
	v := t.View()

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		h := col.Header
		if field, ok := col.Accessor.(FieldAccessor); ok && field.Name == v.SortKey {
			if v.Direction == Ascending {
				h += " ^"
			} else {
				h += " v"
			}
		}
		headers[i] = h
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	if len(v.Rows) == 0 {
		fmt.Fprintln(tw, t.emptyMessage)
	}
	for _, rec := range v.Rows {
		cells := make([]string, len(t.columns))
		for i, col := range t.columns {
			cells[i] = Cell(rec, col)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()

	if v.Total == 0 {
		return
	}

	fmt.Fprintf(w, "Showing %d to %d of %d\n", v.Start, v.End, v.Total)
	if v.TotalPages > 1 {
		pages := make([]string, 0, 5)
		for _, p := range v.PageWindow() {
			if p == v.Page {
				pages = append(pages, fmt.Sprintf("[%d]", p))
			} else {
				pages = append(pages, fmt.Sprintf("%d", p))
			}
		}
		fmt.Fprintf(w, "Pages: %s (of %d)\n", strings.Join(pages, " "), v.TotalPages)
	}
}

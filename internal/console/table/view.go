package table

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// View is the derived, display-ready slice of the collection.
type View struct {
	// Rows is the current page of the filtered, sorted collection.
	Rows []Record
	// Total is the filtered row count.
	Total int
	// Page and TotalPages describe the pagination state after clamping.
	Page       int
	TotalPages int
	// Start and End are the 1-based positions of the first and last row shown,
	// both 0 when the page is empty ("Showing 5 to 8 of 20").
	Start, End int
	// SortKey is the active sort field, "" when unsorted.
	SortKey   string
	Direction Direction
}

// View derives the current page: filter by search text, sort by the active
// key, then slice out the page window.
func (t *Table) View() View {
	filtered := t.filtered()
	sorted := t.sorted(filtered)

	totalPages := 1
	if len(sorted) > 0 {
		totalPages = (len(sorted) + t.pageSize - 1) / t.pageSize
	}
	page := clampPage(t.page, totalPages)

	start := (page - 1) * t.pageSize
	end := start + t.pageSize
	if end > len(sorted) {
		end = len(sorted)
	}

	v := View{
		Rows:       sorted[start:end],
		Total:      len(sorted),
		Page:       page,
		TotalPages: totalPages,
		SortKey:    t.sortKey,
		Direction:  t.direction,
	}
	if len(v.Rows) > 0 {
		v.Start = start + 1
		v.End = end
	}
	return v
}

// PageWindow returns the page numbers offered as direct buttons: at most 5
// consecutive pages. Within the first 3 pages the window is 1..5, within the
// last 2 it is the final 5, otherwise it is centered on the current page.
func (v View) PageWindow() []int {
	total := v.TotalPages
	if total < 1 {
		total = 1
	}

	var first int
	switch {
	case total <= 5:
		first = 1
	case v.Page <= 3:
		first = 1
	case v.Page >= total-1:
		first = total - 4
	default:
		first = v.Page - 2
	}

	count := 5
	if total < 5 {
		count = total
	}

	window := make([]int, 0, count)
	for p := first; p < first+count; p++ {
		window = append(window, p)
	}
	return window
}

// filtered keeps the records where any field's string form contains the
// search text, case-insensitive. Order is preserved; nil values never match.
func (t *Table) filtered() []Record {
	if t.search == "" || !t.searchable {
		return t.rows
	}

	needle := strings.ToLower(t.search)
	matched := make([]Record, 0, len(t.rows))
	for _, rec := range t.rows {
		if recordMatches(rec, needle) {
			matched = append(matched, rec)
		}
	}
	return matched
}

func recordMatches(rec Record, needle string) bool {
	for _, v := range rec {
		if v == nil {
			continue
		}
		if strings.Contains(strings.ToLower(stringify(v)), needle) {
			return true
		}
	}
	return false
}

// sorted orders the records by the active sort key. The sort is stable, and
// records with a nil (or absent) value sort after defined ones regardless of
// direction. Columns are expected to be type-homogeneous; when a column mixes
// numbers and strings, values fall back to comparing their string forms.
func (t *Table) sorted(rows []Record) []Record {
	if t.sortKey == "" {
		return rows
	}

	out := make([]Record, len(rows))
	copy(out, rows)

	sort.SliceStable(out, func(i, j int) bool {
		return t.less(out[i][t.sortKey], out[j][t.sortKey])
	})
	return out
}

func (t *Table) less(a, b any) bool {
	// Nils always lose, independent of direction.
	if a == nil || b == nil {
		return a != nil && b == nil
	}

	cmp := compareValues(a, b)
	if cmp == 0 {
		return false
	}
	if t.direction == Descending {
		cmp = -cmp
	}
	return cmp < 0
}

func compareValues(a, b any) int {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(stringify(a), stringify(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		// JSON numbers decode as float64; render integral values without
		// a fractional part so searching for "45" matches 45.
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprint(v)
	}
}

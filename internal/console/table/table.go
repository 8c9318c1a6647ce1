// Package table implements the generic data table behind every list screen:
// an in-memory collection of uniformly-shaped records plus search, sort and
// pagination state, from which a display view is derived on demand.
//
// The derivation is pure: given the same rows, search text, sort key,
// direction and page, View always produces the same result.
package table

// Record is one row's worth of data, keyed by field name. Values are whatever
// the API decoded from JSON; nil marks an absent value.
type Record map[string]any

// Accessor tells a column how to extract display content from a record.
// It is a tagged variant: either a field name read directly from the record,
// or a pure function computing the content.
type Accessor interface {
	isAccessor()
}

// FieldAccessor reads the named field from the record.
type FieldAccessor struct {
	Name string
}

// ComputedAccessor derives the cell content from the whole record.
type ComputedAccessor struct {
	Fn func(Record) string
}

func (FieldAccessor) isAccessor()    {}
func (ComputedAccessor) isAccessor() {}

// Field returns an accessor reading the named record field.
func Field(name string) Accessor { return FieldAccessor{Name: name} }

// Computed returns an accessor deriving content from the record.
func Computed(fn func(Record) string) Accessor { return ComputedAccessor{Fn: fn} }

// Column describes one table column. Only columns with a FieldAccessor can be
// sorted; header clicks on anything else are ignored.
type Column struct {
	Header   string
	Accessor Accessor
	Sortable bool
}

// Direction of the active sort.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

const defaultPageSize = 10

// Table holds the view state for one list screen. It is not safe for
// concurrent use; the console drives it from a single goroutine.
type Table struct {
	columns      []Column
	keyField     string
	pageSize     int
	searchable   bool
	emptyMessage string

	rows      []Record
	search    string
	sortKey   string
	direction Direction
	page      int
}

// Option configures a Table at construction time. Page size and
// searchability are fixed per instance; callers needing different settings
// create a new table.
type Option func(*Table)

func WithPageSize(n int) Option {
	return func(t *Table) {
		if n > 0 {
			t.pageSize = n
		}
	}
}

func WithSearchable(searchable bool) Option {
	return func(t *Table) { t.searchable = searchable }
}

func WithEmptyMessage(msg string) Option {
	return func(t *Table) { t.emptyMessage = msg }
}

// New creates a table with the given columns. keyField names the record field
// that uniquely identifies a row; uniqueness is the caller's responsibility.
func New(columns []Column, keyField string, opts ...Option) *Table {
	t := &Table{
		columns:      columns,
		keyField:     keyField,
		pageSize:     defaultPageSize,
		searchable:   true,
		emptyMessage: "No data available",
		page:         1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Rows returns the raw, unfiltered row collection.
func (t *Table) Rows() []Record { return t.rows }

// SetRows replaces the row collection wholesale, e.g. after a refetch.
// Search, sort and page state are kept; the page is clamped against the new
// collection by View.
func (t *Table) SetRows(rows []Record) {
	t.rows = rows
}

// SetSearch updates the search text and resets to the first page, since the
// filtered count may shrink below the previous page's range. When the table
// was created non-searchable the call is ignored.
func (t *Table) SetSearch(text string) {
	if !t.searchable {
		return
	}
	t.search = text
	t.page = 1
}

// Search returns the active search text.
func (t *Table) Search() string { return t.search }

// Searchable reports whether the table accepts search input.
func (t *Table) Searchable() bool { return t.searchable }

// ToggleSort reacts to a click on the column with the given header. A
// sortable column cycles ascending then descending; selecting a different
// column restarts at ascending. Clicks on unknown, non-sortable or computed
// columns have no effect.
func (t *Table) ToggleSort(header string) {
	for _, col := range t.columns {
		if col.Header != header || !col.Sortable {
			continue
		}
		field, ok := col.Accessor.(FieldAccessor)
		if !ok {
			return
		}
		if t.sortKey == field.Name {
			if t.direction == Ascending {
				t.direction = Descending
			} else {
				t.direction = Ascending
			}
		} else {
			t.sortKey = field.Name
			t.direction = Ascending
		}
		return
	}
}

// SetPage moves to the given page, clamped to the valid range for the
// current filtered collection. Out-of-range requests are never an error.
func (t *Table) SetPage(page int) {
	t.page = clampPage(page, t.totalPages())
}

// NextPage advances one page; at the last page it is a no-op.
func (t *Table) NextPage() { t.SetPage(t.page + 1) }

// PrevPage goes back one page; at the first page it is a no-op.
func (t *Table) PrevPage() { t.SetPage(t.page - 1) }

// Page returns the current page number.
func (t *Table) Page() int { return clampPage(t.page, t.totalPages()) }

func (t *Table) totalPages() int {
	n := len(t.filtered())
	if n == 0 {
		return 1
	}
	return (n + t.pageSize - 1) / t.pageSize
}

func clampPage(page, total int) int {
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

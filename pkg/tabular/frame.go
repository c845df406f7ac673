package tabular

import (
	"fmt"
	"sort"
	"strconv"
)

type Kind int

const (
	KindMissing Kind = iota
	KindNumeric
	KindCategorical
)

// Value is a tagged dataset cell: a number, a category string, or missing.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
}

func Num(f float64) Value {
	return Value{Kind: KindNumeric, Num: f}
}

func Str(s string) Value {
	return Value{Kind: KindCategorical, Str: s}
}

// String renders the cell the way it is compared against group-mapping
// values: numbers in shortest decimal form, missing cells as "".
func (v Value) String() string {
	switch v.Kind {
	case KindNumeric:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case KindCategorical:
		return v.Str
	default:
		return ""
	}
}

// Frame is a column-major table with a fixed column set.
type Frame struct {
	cols []string
	data map[string][]Value
	rows int
}

func NewFrame(cols []string) *Frame {
	f := &Frame{
		cols: append([]string(nil), cols...),
		data: make(map[string][]Value, len(cols)),
	}
	for _, col := range f.cols {
		f.data[col] = nil
	}
	return f
}

// FromRecords builds a frame from row maps. The column set is the union of
// all row keys in sorted order; absent cells are missing.
func FromRecords(records []map[string]any) (*Frame, error) {
	seen := make(map[string]bool)
	var cols []string
	for _, rec := range records {
		for key := range rec {
			if !seen[key] {
				seen[key] = true
				cols = append(cols, key)
			}
		}
	}
	sort.Strings(cols)

	f := NewFrame(cols)
	for _, rec := range records {
		row := make([]Value, len(cols))
		for i, col := range cols {
			raw, ok := rec[col]
			if !ok {
				continue
			}
			row[i] = fromAny(raw)
		}
		f.AppendRow(row)
	}
	return f, nil
}

func fromAny(raw any) Value {
	switch t := raw.(type) {
	case nil:
		return Value{}
	case float64:
		return Num(t)
	case float32:
		return Num(float64(t))
	case int:
		return Num(float64(t))
	case int64:
		return Num(float64(t))
	case bool:
		if t {
			return Num(1)
		}
		return Num(0)
	case string:
		return Str(t)
	default:
		return Str(fmt.Sprint(t))
	}
}

// AppendRow adds one row; the slice must match the column count.
func (f *Frame) AppendRow(row []Value) {
	for i, col := range f.cols {
		var v Value
		if i < len(row) {
			v = row[i]
		}
		f.data[col] = append(f.data[col], v)
	}
	f.rows++
}

func (f *Frame) Len() int {
	return f.rows
}

func (f *Frame) Columns() []string {
	return f.cols
}

func (f *Frame) Has(col string) bool {
	_, ok := f.data[col]
	return ok
}

func (f *Frame) Column(col string) []Value {
	return f.data[col]
}

// SetColumn replaces an existing column's values.
func (f *Frame) SetColumn(col string, vals []Value) error {
	if !f.Has(col) {
		return fmt.Errorf("no such column: %s", col)
	}
	if len(vals) != f.rows {
		return fmt.Errorf("column %s: got %d values for %d rows", col, len(vals), f.rows)
	}
	f.data[col] = vals
	return nil
}

// Filter keeps only the rows where keep[i] is true, resetting row order
// to the surviving rows.
func (f *Frame) Filter(keep []bool) {
	kept := 0
	for _, k := range keep {
		if k {
			kept++
		}
	}

	for _, col := range f.cols {
		old := f.data[col]
		next := make([]Value, 0, kept)
		for i, k := range keep {
			if k {
				next = append(next, old[i])
			}
		}
		f.data[col] = next
	}
	f.rows = kept
}

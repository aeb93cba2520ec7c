package series

import "fmt"

// Frame groups equal-length Series into ordered named columns, one column per
// instrument. Column order is insertion order.
type Frame struct {
	names []string
	cols  map[string]Series
}

// NewFrame creates an empty frame.
func NewFrame() *Frame {
	return &Frame{cols: make(map[string]Series)}
}

// Add appends a named column. All columns must have the same length; the first
// column fixes it.
func (f *Frame) Add(name string, s Series) error {
	if _, ok := f.cols[name]; ok {
		return fmt.Errorf("duplicate column: %s", name)
	}
	if len(f.names) > 0 && len(s) != f.Len() {
		return fmt.Errorf("column %s: length %d, frame length %d", name, len(s), f.Len())
	}
	f.names = append(f.names, name)
	f.cols[name] = s
	return nil
}

// Columns returns column names in insertion order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Col returns the named column, or nil if absent.
func (f *Frame) Col(name string) Series {
	return f.cols[name]
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if len(f.names) == 0 {
		return 0
	}
	return len(f.cols[f.names[0]])
}

// Apply reduces every column with fn, returning one scalar per column.
func (f *Frame) Apply(fn func(Series) float64) map[string]float64 {
	out := make(map[string]float64, len(f.names))
	for _, name := range f.names {
		out[name] = fn(f.cols[name])
	}
	return out
}

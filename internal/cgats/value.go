package cgats

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/ironsheep/cgats-tools/internal/deltae"
)

// OutputPlaces is the number of decimal places numeric cells are written with.
const OutputPlaces = 4

// Value is one cell: its original text and, when the text is a finite
// number, the parsed value.
type Value struct {
	Text    string
	Float   float64
	Numeric bool
}

// ParseValue builds a Value from cell text.
func ParseValue(s string) Value {
	v := Value{Text: s}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		v.Float = f
		v.Numeric = true
	}
	return v
}

// FloatValue builds a numeric Value.
func FloatValue(f float64) Value {
	return Value{Text: formatFloat(f), Float: f, Numeric: true}
}

// IntValue builds a numeric Value holding an integer.
func IntValue(i int) Value {
	return Value{Text: strconv.Itoa(i), Float: float64(i), Numeric: true}
}

// Number returns the parsed number and whether the cell is numeric.
func (v Value) Number() (float64, bool) {
	return v.Float, v.Numeric
}

// String renders the cell for output: numbers rounded to OutputPlaces,
// everything else verbatim.
func (v Value) String() string {
	if v.Numeric {
		return formatFloat(v.Float)
	}
	return v.Text
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(deltae.Round(f, OutputPlaces), 'f', -1, 64)
}

// zero returns a numeric Value of 0, or v unchanged when v is text.
func (v Value) zero() Value {
	if !v.Numeric {
		return v
	}
	return Value{Text: "0", Float: 0, Numeric: true}
}

// Sample is one measurement row; Values align with the document Layout.
type Sample struct {
	Values []Value
}

// NewSample parses each cell of a data record.
func NewSample(cells []string) Sample {
	values := make([]Value, len(cells))
	for i, c := range cells {
		values[i] = ParseValue(c)
	}
	return Sample{Values: values}
}

// Len returns the number of cells.
func (s Sample) Len() int {
	return len(s.Values)
}

// Value returns the cell at position i.
func (s Sample) Value(i int) (Value, bool) {
	if i < 0 || i >= len(s.Values) {
		return Value{}, false
	}
	return s.Values[i], true
}

// Clone returns a deep copy.
func (s Sample) Clone() Sample {
	return Sample{Values: append([]Value(nil), s.Values...)}
}

// Zero returns a copy with every numeric cell set to 0 and text cells kept.
func (s Sample) Zero() Sample {
	out := make([]Value, len(s.Values))
	for i, v := range s.Values {
		out[i] = v.zero()
	}
	return Sample{Values: out}
}

// Divide returns a copy with every numeric cell divided by n.
func (s Sample) Divide(n int) Sample {
	out := s.Clone()
	for i, v := range out.Values {
		if v.Numeric {
			out.Values[i] = FloatValue(v.Float / float64(n))
		}
	}
	return out
}

// Add returns a copy where each numeric cell has the matching cell of other
// added to it. Text cells, and numeric cells whose counterpart is text, are
// kept as they are. Samples of different lengths violate the layout
// invariant and are rejected.
func (s Sample) Add(other Sample) (Sample, error) {
	if len(s.Values) != len(other.Values) {
		return Sample{}, newError(KindInvariantViolation, "add samples",
			"cell count %d does not match %d", len(other.Values), len(s.Values))
	}
	out := s.Clone()
	for i, v := range out.Values {
		if !v.Numeric {
			continue
		}
		if add, ok := other.Values[i].Number(); ok {
			out.Values[i] = FloatValue(v.Float + add)
		}
	}
	return out, nil
}

// Lab extracts the L*, a*, b* cells at the given positions.
func (s Sample) Lab(idx [3]int) (deltae.Lab, error) {
	var lab [3]float64
	for k, i := range idx {
		v, ok := s.Value(i)
		if !ok {
			return deltae.Lab{}, newError(KindInvariantViolation, "extract lab",
				"position %d outside sample of %d cells", i, s.Len())
		}
		f, ok := v.Number()
		if !ok {
			return deltae.Lab{}, newError(KindIncompleteData, "extract lab", "cell %q is not a number", v.Text)
		}
		lab[k] = f
	}
	return deltae.Lab{L: lab[0], A: lab[1], B: lab[2]}, nil
}

func (s Sample) String() string {
	cells := make([]string, len(s.Values))
	for i, v := range s.Values {
		cells[i] = v.String()
	}
	return strings.Join(cells, "\t")
}

// SampleTable maps a zero-based sample index to its Sample and iterates in
// index order.
type SampleTable struct {
	samples map[int]Sample
	keys    []int
}

// NewSampleTable returns an empty table.
func NewSampleTable() *SampleTable {
	return &SampleTable{samples: make(map[int]Sample)}
}

// Len returns the number of samples.
func (t *SampleTable) Len() int {
	return len(t.keys)
}

// Get returns the sample stored at index.
func (t *SampleTable) Get(index int) (Sample, bool) {
	s, ok := t.samples[index]
	return s, ok
}

// Set stores s at index, replacing any previous sample.
func (t *SampleTable) Set(index int, s Sample) {
	if _, ok := t.samples[index]; !ok {
		pos := sort.SearchInts(t.keys, index)
		t.keys = append(t.keys, 0)
		copy(t.keys[pos+1:], t.keys[pos:])
		t.keys[pos] = index
	}
	t.samples[index] = s
}

// Append stores s after the current last index and returns its index.
func (t *SampleTable) Append(s Sample) int {
	index := 0
	if n := len(t.keys); n > 0 {
		index = t.keys[n-1] + 1
	}
	t.Set(index, s)
	return index
}

// Indexes returns the keys in ascending order.
func (t *SampleTable) Indexes() []int {
	return append([]int(nil), t.keys...)
}

// Each calls fn for every sample in index order, stopping at the first error.
func (t *SampleTable) Each(fn func(index int, s Sample) error) error {
	for _, k := range t.keys {
		if err := fn(k, t.samples[k]); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether both tables hold the same indexes and cell texts
// as rendered for output.
func (t *SampleTable) Equal(other *SampleTable) bool {
	if t.Len() != other.Len() {
		return false
	}
	for _, k := range t.keys {
		a := t.samples[k]
		b, ok := other.samples[k]
		if !ok || a.String() != b.String() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (t *SampleTable) Clone() *SampleTable {
	c := &SampleTable{
		samples: make(map[int]Sample, len(t.samples)),
		keys:    append([]int(nil), t.keys...),
	}
	for k, s := range t.samples {
		c.samples[k] = s.Clone()
	}
	return c
}

// update replaces the sample at an existing index through fn.
func (t *SampleTable) update(fn func(index int, s Sample) Sample) {
	for _, k := range t.keys {
		t.samples[k] = fn(k, t.samples[k])
	}
}

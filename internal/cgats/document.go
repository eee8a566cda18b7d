package cgats

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/cgats-tools/internal/deltae"
)

// Document is a parsed CGATS file: its dialect, the metadata lines kept
// verbatim, the field layout, and the sample table.
type Document struct {
	Vendor   Vendor
	Metadata []Record
	Layout   Layout
	Samples  *SampleTable
}

// Parse builds a Document from file contents.
//
// The pipeline is: split into records, detect the vendor from the first
// record, extract metadata, layout, and data, validate every data row
// against the layout, and map rows into the sample table. Parsing either
// fully succeeds or returns a single *Error and no Document.
func Parse(data []byte) (*Document, error) {
	records, err := SplitRecords(data)
	if err != nil {
		return nil, err
	}
	return fromRecords(records)
}

// Read parses a Document from r, which is read to completion first.
func Read(r io.Reader) (*Document, error) {
	records, err := ReadRecords(r)
	if err != nil {
		return nil, err
	}
	return fromRecords(records)
}

// ReadFile reads and parses the file at path. Errors carry the path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: KindFileError, Op: "read", Path: path, Err: err}
	}
	doc, err := Parse(data)
	if err != nil {
		if e, ok := err.(*Error); ok {
			return nil, e.withPath(path)
		}
		return nil, err
	}
	return doc, nil
}

func fromRecords(records []Record) (*Document, error) {
	vendor, err := DetectVendor(records[0])
	if err != nil {
		return nil, err
	}

	layout, err := ExtractLayout(records, vendor)
	if err != nil {
		return nil, err
	}

	data, err := ExtractData(records)
	if err != nil {
		return nil, err
	}

	if err := validateData(layout, data); err != nil {
		return nil, err
	}

	return &Document{
		Vendor:   vendor,
		Metadata: ExtractMetadata(records),
		Layout:   layout,
		Samples:  mapData(data),
	}, nil
}

// Serialize renders the Document in CGATS text form: metadata, then the
// DATA_FORMAT block (omitted for ColorBurst), then the DATA block. Numeric
// cells are rounded to OutputPlaces.
func (d *Document) Serialize() string {
	var b strings.Builder

	for _, rec := range d.Metadata {
		b.WriteString(rec.String())
		b.WriteByte('\n')
	}

	if d.Vendor != VendorColorBurst {
		b.WriteString(TagBeginDataFormat + "\n")
		b.WriteString(strings.Join(d.Layout.Names(), "\t"))
		b.WriteByte('\n')
		b.WriteString(TagEndDataFormat + "\n")
	}

	b.WriteString(TagBeginData + "\n")
	_ = d.Samples.Each(func(_ int, s Sample) error {
		b.WriteString(s.String())
		b.WriteByte('\n')
		return nil
	})
	b.WriteString(TagEndData + "\n")

	return b.String()
}

// Bytes returns Serialize as a byte slice.
func (d *Document) Bytes() []byte {
	return []byte(d.Serialize())
}

// WriteTo writes the serialized Document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.Copy(w, bytes.NewReader(d.Bytes()))
	if err != nil {
		return n, &Error{Kind: KindWriteError, Op: "write", Err: err}
	}
	return n, nil
}

// WriteFile writes the serialized Document to path in one call.
func (d *Document) WriteFile(path string) error {
	if err := os.WriteFile(path, d.Bytes(), 0o644); err != nil {
		return &Error{Kind: KindWriteError, Op: "write", Path: path, Err: err}
	}
	return nil
}

// String summarizes the Document as Vendor(count):[FIELD, ...].
func (d *Document) String() string {
	return fmt.Sprintf("%s(%d):[%s]", d.Vendor, d.SampleCount(), strings.Join(d.Layout.Names(), ", "))
}

// SampleCount returns the number of samples.
func (d *Document) SampleCount() int {
	return d.Samples.Len()
}

// FieldIndex returns the layout position of f.
func (d *Document) FieldIndex(f Field) (int, bool) {
	i := d.Layout.Index(f)
	return i, i >= 0
}

// HasLab reports whether the layout holds LAB_L, LAB_A, and LAB_B.
func (d *Document) HasLab() bool {
	return d.Layout.Contains(LabL) && d.Layout.Contains(LabA) && d.Layout.Contains(LabB)
}

// LabIndexes returns the layout positions of LAB_L, LAB_A, and LAB_B.
func (d *Document) LabIndexes() ([3]int, error) {
	var idx [3]int
	for k, f := range [3]Field{LabL, LabA, LabB} {
		i, ok := d.FieldIndex(f)
		if !ok {
			return idx, newError(KindIncompleteData, "lab indexes", "%s not in DATA_FORMAT", f)
		}
		idx[k] = i
	}
	return idx, nil
}

// DeltaMethod returns the position and method of the first delta-E field in
// the layout. A layout without one yields ErrIncompleteData.
func (d *Document) DeltaMethod() (int, deltae.Method, error) {
	for i, f := range d.Layout {
		if m, ok := f.Method(); ok {
			return i, m, nil
		}
	}
	return 0, 0, newError(KindIncompleteData, "delta method", "no delta-E field in DATA_FORMAT")
}

// EnsureSampleID makes SAMPLE_ID match the table order. When the column is
// missing it is inserted at position 0; otherwise existing values are
// overwritten. Sample i gets the ID i+1, so IDs run 1..N.
//
// ColorBurst layouts are fixed and never written out, so a ColorBurst
// document without SAMPLE_ID is left unchanged.
func (d *Document) EnsureSampleID() {
	pos, ok := d.FieldIndex(SampleID)
	if !ok {
		if d.Vendor == VendorColorBurst {
			return
		}
		d.Layout = append(Layout{SampleID}, d.Layout...)
		d.Samples.update(func(index int, s Sample) Sample {
			values := make([]Value, 0, len(s.Values)+1)
			values = append(values, IntValue(index+1))
			return Sample{Values: append(values, s.Values...)}
		})
		return
	}

	d.Samples.update(func(index int, s Sample) Sample {
		out := s.Clone()
		if pos < len(out.Values) {
			out.Values[pos] = IntValue(index + 1)
		}
		return out
	})
}

// SampleIDs returns the SAMPLE_ID of every sample in table order. A
// non-integer ID yields ErrInvalidID.
func (d *Document) SampleIDs() ([]int, error) {
	pos, ok := d.FieldIndex(SampleID)
	if !ok {
		return nil, newError(KindIncompleteData, "sample ids", "no SAMPLE_ID in DATA_FORMAT")
	}

	ids := make([]int, 0, d.SampleCount())
	err := d.Samples.Each(func(index int, s Sample) error {
		v, ok := s.Value(pos)
		if !ok {
			return newError(KindInvariantViolation, "sample ids", "sample %d has no cell %d", index, pos)
		}
		id, err := strconv.Atoi(v.Text)
		if err != nil {
			return newError(KindInvalidID, "sample ids", "sample %d: %q", index, v.Text)
		}
		ids = append(ids, id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// RenumberSets rewrites any metadata line whose first cell mentions
// NUMBER_OF_SETS to NUMBER_OF_SETS<TAB>n.
func (d *Document) RenumberSets(n int) {
	for i, rec := range d.Metadata {
		if strings.Contains(rec.First(), "NUMBER_OF_SETS") {
			d.Metadata[i] = Record{"NUMBER_OF_SETS", strconv.Itoa(n)}
		}
	}
}

// DeriveEmpty returns a Document with the same vendor, metadata, and layout
// and no samples.
func (d *Document) DeriveEmpty() *Document {
	return &Document{
		Vendor:   d.Vendor,
		Metadata: cloneRecords(d.Metadata),
		Layout:   d.Layout.clone(),
		Samples:  NewSampleTable(),
	}
}

// Clone returns a deep copy.
func (d *Document) Clone() *Document {
	c := d.DeriveEmpty()
	c.Samples = d.Samples.Clone()
	return c
}

// Equal reports whether both Documents have the same layout and samples.
// Vendor and metadata are not compared.
func (d *Document) Equal(other *Document) bool {
	return d.Layout.Equal(other.Layout) && d.Samples.Equal(other.Samples)
}

func cloneRecords(recs []Record) []Record {
	if recs == nil {
		return nil
	}
	out := make([]Record, len(recs))
	for i, r := range recs {
		out[i] = r.clone()
	}
	return out
}

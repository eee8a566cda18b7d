package compare

import (
	"fmt"
	"strconv"

	"github.com/ironsheep/cgats-tools/internal/cgats"
	"github.com/ironsheep/cgats-tools/internal/deltae"
)

// CheckCompatible verifies that docs can be averaged: the collection is
// non-empty and every member has either the same sample count or the same
// layout as the first.
//
// Returns:
//   - error: cgats.ErrNoData for an empty collection, cgats.ErrCannotCompare
//     when a member matches the first in neither respect.
func CheckCompatible(docs []*cgats.Document) error {
	if len(docs) == 0 {
		return cgats.NewError(cgats.KindNoData, "compare", "no documents")
	}

	prime := docs[0]
	for i, d := range docs[1:] {
		if d.SampleCount() != prime.SampleCount() && !d.Layout.Equal(prime.Layout) {
			return cgats.NewError(cgats.KindCannotCompare, "compare",
				"document %d has %d samples and a different layout than document 1 (%d samples)",
				i+2, d.SampleCount(), prime.SampleCount())
		}
	}
	return nil
}

// Average returns the per-cell mean of docs.
//
// A single document is returned as a copy. Otherwise the result starts from
// the first document's vendor, metadata, and layout. Every numeric cell of
// every document is divided by the document count and summed into the
// result at the same sample index. Text cells come from the first document
// that supplies that index and are never combined. "Average of N" is
// appended to the first metadata line.
//
// Parameters:
//   - docs: The documents to average, in order.
//
// Returns:
//   - *cgats.Document: The averaged document.
//   - error: cgats.ErrNoData, cgats.ErrCannotCompare, or
//     cgats.ErrInvariantViolation if two samples at the same index have
//     different cell counts.
func Average(docs []*cgats.Document) (*cgats.Document, error) {
	if err := CheckCompatible(docs); err != nil {
		return nil, err
	}

	n := len(docs)
	if n == 1 {
		return docs[0].Clone(), nil
	}

	result := docs[0].DeriveEmpty()
	for _, doc := range docs {
		err := doc.Samples.Each(func(index int, s cgats.Sample) error {
			part := s.Divide(n)

			acc, ok := result.Samples.Get(index)
			if !ok {
				acc = s.Zero()
			}

			sum, err := acc.Add(part)
			if err != nil {
				return fmt.Errorf("sample %d: %w", index, err)
			}
			result.Samples.Set(index, sum)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	annotation := "Average of " + strconv.Itoa(n)
	if len(result.Metadata) == 0 {
		result.Metadata = []cgats.Record{{annotation}}
	} else {
		result.Metadata[0] = append(result.Metadata[0], annotation)
	}

	return result, nil
}

// Concatenate appends the samples of every document after those of the
// first.
//
// All documents must have identical layouts. The result is a copy of the
// first document with the other documents' samples added at increasing
// indexes. SAMPLE_ID is then renumbered 1..N (inserted if absent, except
// for ColorBurst whose layout is fixed) and any NUMBER_OF_SETS metadata line
// is rewritten to the new count.
//
// Returns:
//   - error: cgats.ErrNoData for an empty collection, cgats.ErrCannotCompare
//     when layouts differ.
func Concatenate(docs []*cgats.Document) (*cgats.Document, error) {
	if len(docs) == 0 {
		return nil, cgats.NewError(cgats.KindNoData, "concatenate", "no documents")
	}

	prime := docs[0]
	for i, d := range docs[1:] {
		if !d.Layout.Equal(prime.Layout) {
			return nil, cgats.NewError(cgats.KindCannotCompare, "concatenate",
				"document %d layout %v differs from %v", i+2, d.Layout.Names(), prime.Layout.Names())
		}
	}

	result := prime.Clone()
	for _, d := range docs[1:] {
		_ = d.Samples.Each(func(_ int, s cgats.Sample) error {
			result.Samples.Append(s.Clone())
			return nil
		})
	}

	result.EnsureSampleID()
	result.RenumberSets(result.SampleCount())

	return result, nil
}

// CanDeltaE reports whether DeltaE accepts docs: exactly two documents with
// the same sample count, both carrying LAB_L, LAB_A, and LAB_B.
func CanDeltaE(docs []*cgats.Document) bool {
	return len(docs) == 2 &&
		docs[0].SampleCount() == docs[1].SampleCount() &&
		docs[0].HasLab() &&
		docs[1].HasLab()
}

// DeltaE computes the color difference between matching samples of two
// documents.
//
// Each document's Lab values are read from its own LAB_L/LAB_A/LAB_B
// positions, so the two layouts may differ. The first document is the
// reference. The result is a new Cgats document with layout
// [SAMPLE_ID, <method field>], one sample per index of the first document,
// values rounded to 4 places, and NUMBER_OF_SETS / NUMBER_OF_FIELDS
// metadata.
//
// Returns:
//   - error: cgats.ErrCannotCompare when CanDeltaE is false,
//     cgats.ErrIncompleteData for a non-numeric Lab cell, or
//     cgats.ErrInvariantViolation when an index of the first document is
//     missing from the second.
func DeltaE(docs []*cgats.Document, method deltae.Method) (*cgats.Document, error) {
	if !CanDeltaE(docs) {
		return nil, cgats.NewError(cgats.KindCannotCompare, "delta e",
			"need two documents with Lab data and equal sample counts")
	}
	ref, smp := docs[0], docs[1]

	refIdx, err := ref.LabIndexes()
	if err != nil {
		return nil, err
	}
	smpIdx, err := smp.LabIndexes()
	if err != nil {
		return nil, err
	}

	field := cgats.MethodField(method)
	result := &cgats.Document{
		Vendor:   cgats.VendorCgats,
		Metadata: []cgats.Record{{"CGATS.17"}},
		Layout:   cgats.Layout{cgats.SampleID, field},
		Samples:  cgats.NewSampleTable(),
	}

	err = ref.Samples.Each(func(index int, rs cgats.Sample) error {
		ss, ok := smp.Samples.Get(index)
		if !ok {
			return cgats.NewError(cgats.KindInvariantViolation, "delta e",
				"sample %d missing from the second document", index)
		}

		a, err := rs.Lab(refIdx)
		if err != nil {
			return fmt.Errorf("reference sample %d: %w", index, err)
		}
		b, err := ss.Lab(smpIdx)
		if err != nil {
			return fmt.Errorf("sample %d: %w", index, err)
		}

		de := deltae.Round(deltae.Compute(a, b, method), cgats.OutputPlaces)
		result.Samples.Set(index, cgats.Sample{Values: []cgats.Value{
			cgats.IntValue(index + 1),
			cgats.FloatValue(de),
		}})
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Metadata = append(result.Metadata,
		cgats.Record{"NUMBER_OF_SETS", strconv.Itoa(result.SampleCount())},
		cgats.Record{"NUMBER_OF_FIELDS", strconv.Itoa(len(result.Layout))},
	)

	return result, nil
}

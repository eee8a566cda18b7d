package compare

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/ironsheep/cgats-tools/internal/cgats"
	"github.com/ironsheep/cgats-tools/internal/deltae"
)

// DefaultSplit is the fraction of samples counted as "best" in a Report.
const DefaultSplit = 0.9

// Summary holds descriptive statistics over a list of delta-E values.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// Summarize computes a Summary. StdDev is the sample standard deviation,
// and 0 when there are fewer than two values.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, cgats.NewError(cgats.KindIncompleteData, "summarize", "no delta-E values")
	}

	data := stats.Float64Data(values)
	s := Summary{Count: len(values)}

	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, fmt.Errorf("failed to compute mean: %w", err)
	}
	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, fmt.Errorf("failed to compute min: %w", err)
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, fmt.Errorf("failed to compute max: %w", err)
	}
	if len(values) > 1 {
		if s.StdDev, err = stats.StandardDeviationSample(data); err != nil {
			return Summary{}, fmt.Errorf("failed to compute standard deviation: %w", err)
		}
	}
	return s, nil
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\t%10s: %.4f\n", "Average DE", s.Mean)
	fmt.Fprintf(&b, "\t%10s: %.4f\n", "Max DE", s.Max)
	fmt.Fprintf(&b, "\t%10s: %.4f\n", "Min DE", s.Min)
	fmt.Fprintf(&b, "\t%10s: %.4f\n", "StdDev DE", s.StdDev)
	return b.String()
}

// Report summarizes a delta-E result document overall and split into the
// best and worst fractions.
type Report struct {
	Method  deltae.Method `json:"-"`
	Split   float64       `json:"split"`
	Overall Summary       `json:"overall"`
	Best    Summary       `json:"best"`
	Worst   Summary       `json:"worst"`
}

// NewReport builds a Report from a document produced by DeltaE.
//
// The delta-E column is located with DeltaMethod and its numeric values
// are collected in table order. The sorted list is split at
// round(count * split), clamped to [1, count-1] so both parts are
// non-empty. With a single sample both parts hold that sample.
//
// Parameters:
//   - doc: A document with a delta-E field, such as a DeltaE result.
//   - split: The best fraction, strictly between 0 and 1.
//
// Returns:
//   - error: cgats.ErrOther for a split outside (0, 1),
//     cgats.ErrIncompleteData when the document has no delta-E field or no
//     numeric delta-E values.
func NewReport(doc *cgats.Document, split float64) (*Report, error) {
	if split <= 0 || split >= 1 || math.IsNaN(split) {
		return nil, cgats.NewError(cgats.KindOther, "report", "split %v must be between 0 and 1", split)
	}

	pos, method, err := doc.DeltaMethod()
	if err != nil {
		return nil, err
	}

	var values []float64
	_ = doc.Samples.Each(func(_ int, s cgats.Sample) error {
		if v, ok := s.Value(pos); ok {
			if f, ok := v.Number(); ok {
				values = append(values, f)
			}
		}
		return nil
	})

	overall, err := Summarize(values)
	if err != nil {
		return nil, err
	}

	best, worst := SplitValues(values, split)
	r := &Report{Method: method, Split: split, Overall: overall}
	if r.Best, err = Summarize(best); err != nil {
		return nil, err
	}
	if r.Worst, err = Summarize(worst); err != nil {
		return nil, err
	}
	return r, nil
}

// SplitValues sorts a copy of values ascending and divides it at
// round(len * p), clamped to [1, len-1]. A single value is returned in
// both parts.
func SplitValues(values []float64, p float64) (best, worst []float64) {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	n := len(sorted)
	if n <= 1 {
		return sorted, append([]float64(nil), sorted...)
	}

	idx := int(math.Round(float64(n) * p))
	if idx < 1 {
		idx = 1
	}
	if idx > n-1 {
		idx = n - 1
	}
	return sorted[:idx], sorted[idx:]
}

func percent(p float64) int {
	return int(math.Round(p * 100))
}

// String renders the report in its fixed text layout.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Number of Samples: %d\n", r.Overall.Count)
	fmt.Fprintf(&b, "DE Formula: %s\n\n", r.Method)

	fmt.Fprintf(&b, "OVERALL - (%d colors)\n", r.Overall.Count)
	b.WriteString(r.Overall.String())
	b.WriteByte('\n')

	fmt.Fprintf(&b, "BEST %d%% - (%d colors)\n", percent(r.Split), r.Best.Count)
	b.WriteString(r.Best.String())
	b.WriteByte('\n')

	fmt.Fprintf(&b, "WORST %d%% - (%d colors)\n", 100-percent(r.Split), r.Worst.Count)
	b.WriteString(r.Worst.String())
	b.WriteByte('\n')

	return b.String()
}

package compare

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/ironsheep/cgats-tools/internal/cgats"
	"github.com/ironsheep/cgats-tools/internal/deltae"
)

// deltaDoc builds a delta-E result document holding values in order.
func deltaDoc(values []float64, m deltae.Method) *cgats.Document {
	doc := &cgats.Document{
		Vendor:   cgats.VendorCgats,
		Metadata: []cgats.Record{{"CGATS.17"}},
		Layout:   cgats.Layout{cgats.SampleID, cgats.MethodField(m)},
		Samples:  cgats.NewSampleTable(),
	}
	for i, v := range values {
		doc.Samples.Set(i, cgats.Sample{Values: []cgats.Value{cgats.IntValue(i + 1), cgats.FloatValue(v)}})
	}
	return doc
}

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if s.Count != 8 || s.Mean != 5 || s.Min != 2 || s.Max != 9 {
		t.Errorf("unexpected summary: %+v", s)
	}
	// Sample standard deviation: sqrt(32/7).
	if want := math.Sqrt(32.0 / 7.0); math.Abs(s.StdDev-want) > 1e-9 {
		t.Errorf("StdDev = %v, want %v", s.StdDev, want)
	}

	one, err := Summarize([]float64{3.5})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if one.StdDev != 0 || one.Mean != 3.5 {
		t.Errorf("single value summary: %+v", one)
	}

	if _, err := Summarize(nil); !errors.Is(err, cgats.ErrIncompleteData) {
		t.Errorf("got %v, want ErrIncompleteData", err)
	}
}

func TestSplitValues(t *testing.T) {
	seq := func(n int) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = float64(n - i) // descending, so sorting matters
		}
		return out
	}

	tests := []struct {
		n         int
		p         float64
		wantBest  int
		wantWorst int
	}{
		{100, 0.9, 90, 10},
		{11, 0.9, 10, 1},
		{10, 0.5, 5, 5},
		{2, 0.9, 1, 1},
		{2, 0.1, 1, 1},
		{5, 0.99, 4, 1},
		{5, 0.01, 1, 4},
		{1, 0.9, 1, 1},
	}

	for _, tt := range tests {
		best, worst := SplitValues(seq(tt.n), tt.p)
		if len(best) != tt.wantBest || len(worst) != tt.wantWorst {
			t.Errorf("n=%d p=%v: got %d/%d, want %d/%d",
				tt.n, tt.p, len(best), len(worst), tt.wantBest, tt.wantWorst)
		}
		if tt.n > 1 && len(best)+len(worst) != tt.n {
			t.Errorf("n=%d: partitions do not cover the input", tt.n)
		}
		if len(best) > 0 && len(worst) > 0 && best[len(best)-1] > worst[0] {
			t.Errorf("n=%d: best values must not exceed worst values", tt.n)
		}
	}
}

func TestNewReport(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i+1) / 10
	}

	r, err := NewReport(deltaDoc(values, deltae.DE2000), DefaultSplit)
	if err != nil {
		t.Fatalf("NewReport failed: %v", err)
	}
	if r.Overall.Count != 100 || r.Best.Count != 90 || r.Worst.Count != 10 {
		t.Errorf("counts: overall %d best %d worst %d", r.Overall.Count, r.Best.Count, r.Worst.Count)
	}
	if r.Best.Count+r.Worst.Count != r.Overall.Count {
		t.Error("best + worst must equal overall")
	}
	if r.Best.Max != 9 || r.Worst.Min != 9.1 || r.Overall.Max != 10 {
		t.Errorf("unexpected bounds: best max %v, worst min %v", r.Best.Max, r.Worst.Min)
	}
	if r.Method != deltae.DE2000 {
		t.Errorf("method: got %s", r.Method)
	}
}

func TestNewReport_SingleSample(t *testing.T) {
	r, err := NewReport(deltaDoc([]float64{1.25}, deltae.DE1976), DefaultSplit)
	if err != nil {
		t.Fatalf("NewReport failed: %v", err)
	}
	if r.Best.Count != 1 || r.Worst.Count != 1 {
		t.Errorf("both partitions should hold the single sample: %d/%d", r.Best.Count, r.Worst.Count)
	}
	if r.Overall.StdDev != 0 {
		t.Errorf("StdDev of one value: %v", r.Overall.StdDev)
	}
}

func TestNewReport_Errors(t *testing.T) {
	doc := deltaDoc([]float64{1, 2, 3}, deltae.DE2000)
	for _, split := range []float64{0, 1, -0.5, 1.5, math.NaN()} {
		if _, err := NewReport(doc, split); !errors.Is(err, cgats.ErrOther) {
			t.Errorf("split %v: got %v, want ErrOther", split, err)
		}
	}

	lab := labDoc(t, testLabs, false)
	if _, err := NewReport(lab, 0.9); !errors.Is(err, cgats.ErrIncompleteData) {
		t.Errorf("no delta field: got %v, want ErrIncompleteData", err)
	}
}

func TestReport_String(t *testing.T) {
	r, err := NewReport(deltaDoc([]float64{1, 2, 3, 4}, deltae.DE2000), 0.75)
	if err != nil {
		t.Fatalf("NewReport failed: %v", err)
	}

	want := "Number of Samples: 4\n" +
		"DE Formula: DE2000\n" +
		"\n" +
		"OVERALL - (4 colors)\n" +
		"\tAverage DE: 2.5000\n" +
		"\t    Max DE: 4.0000\n" +
		"\t    Min DE: 1.0000\n" +
		"\t StdDev DE: 1.2910\n" +
		"\n" +
		"BEST 75% - (3 colors)\n" +
		"\tAverage DE: 2.0000\n" +
		"\t    Max DE: 3.0000\n" +
		"\t    Min DE: 1.0000\n" +
		"\t StdDev DE: 1.0000\n" +
		"\n" +
		"WORST 25% - (1 colors)\n" +
		"\tAverage DE: 4.0000\n" +
		"\t    Max DE: 4.0000\n" +
		"\t    Min DE: 4.0000\n" +
		"\t StdDev DE: 0.0000\n" +
		"\n"
	if got := r.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestReport_FromDeltaE(t *testing.T) {
	a := labDoc(t, testLabs, false)
	b := labDoc(t, testLabs, true)
	de, err := DeltaE([]*cgats.Document{a, b}, deltae.DE2000)
	if err != nil {
		t.Fatalf("DeltaE failed: %v", err)
	}

	r, err := NewReport(de, DefaultSplit)
	if err != nil {
		t.Fatalf("NewReport failed: %v", err)
	}
	if !strings.Contains(r.String(), "Number of Samples: 5") {
		t.Errorf("unexpected report:\n%s", r)
	}
	if r.Overall.Max != 0 {
		t.Errorf("identical inputs: max %v, want 0", r.Overall.Max)
	}
}

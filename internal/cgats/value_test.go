package cgats

import (
	"errors"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		in      string
		numeric bool
		out     string
	}{
		{"12.5", true, "12.5"},
		{"-0.00001", true, "0"},
		{"1e2", true, "100"},
		{"3.14159265", true, "3.1416"},
		{"A1", false, "A1"},
		{"NaN", false, "NaN"},
		{"Inf", false, "Inf"},
		{"", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := ParseValue(tt.in)
			if v.Numeric != tt.numeric {
				t.Errorf("Numeric = %v, want %v", v.Numeric, tt.numeric)
			}
			if got := v.String(); got != tt.out {
				t.Errorf("String() = %q, want %q", got, tt.out)
			}
			if v.Text != tt.in {
				t.Errorf("Text = %q, want original %q", v.Text, tt.in)
			}
		})
	}
}

func TestSample_Arithmetic(t *testing.T) {
	a := NewSample([]string{"A", "10", "4"})
	b := NewSample([]string{"B", "20", "x"})

	half := a.Divide(2)
	if got := half.String(); got != "A\t5\t2" {
		t.Errorf("Divide: got %q", got)
	}

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if got := sum.String(); got != "A\t30\t4" {
		t.Errorf("Add: got %q", got)
	}

	if got := a.Zero().String(); got != "A\t0\t0" {
		t.Errorf("Zero: got %q", got)
	}

	_, err = a.Add(NewSample([]string{"1"}))
	if !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("got %v, want ErrInvariantViolation", err)
	}
}

func TestSample_Lab(t *testing.T) {
	s := NewSample([]string{"1", "50", "-2.5", "10"})

	lab, err := s.Lab([3]int{1, 2, 3})
	if err != nil {
		t.Fatalf("Lab failed: %v", err)
	}
	if lab.L != 50 || lab.A != -2.5 || lab.B != 10 {
		t.Errorf("got %+v", lab)
	}

	if _, err := s.Lab([3]int{1, 2, 9}); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("got %v, want ErrInvariantViolation", err)
	}

	text := NewSample([]string{"50", "n/a", "0"})
	if _, err := text.Lab([3]int{0, 1, 2}); !errors.Is(err, ErrIncompleteData) {
		t.Errorf("got %v, want ErrIncompleteData", err)
	}
}

func TestSampleTable_Order(t *testing.T) {
	table := NewSampleTable()
	table.Set(2, NewSample([]string{"c"}))
	table.Set(0, NewSample([]string{"a"}))
	table.Set(1, NewSample([]string{"b"}))
	if idx := table.Append(NewSample([]string{"d"})); idx != 3 {
		t.Errorf("Append index: got %d, want 3", idx)
	}

	var got string
	_ = table.Each(func(_ int, s Sample) error {
		got += s.String()
		return nil
	})
	if got != "abcd" {
		t.Errorf("iteration order: got %q, want abcd", got)
	}

	table.Set(1, NewSample([]string{"B"}))
	if table.Len() != 4 {
		t.Errorf("replacing a sample changed Len to %d", table.Len())
	}

	stop := errors.New("stop")
	calls := 0
	err := table.Each(func(int, Sample) error {
		calls++
		return stop
	})
	if err != stop || calls != 1 {
		t.Errorf("Each should stop at the first error: err=%v calls=%d", err, calls)
	}
}

package cgats

import (
	"errors"
	"testing"

	"github.com/ironsheep/cgats-tools/internal/deltae"
)

func TestField_RoundTrip(t *testing.T) {
	for _, f := range AllFields() {
		got, err := ParseField(f.String())
		if err != nil {
			t.Errorf("ParseField(%q) failed: %v", f.String(), err)
			continue
		}
		if got != f {
			t.Errorf("ParseField(%q) = %s, want %s", f.String(), got, f)
		}
	}
}

func TestParseField_Aliases(t *testing.T) {
	tests := []struct {
		in   string
		want Field
	}{
		{"DE2000", DE2000},
		{"DE00", DE2000},
		{"DE_2000", DE2000},
		{"de_2000", DE2000},
		{"lab_de_2000", DE2000},
		{"DE", DE1976},
		{"DE94", DE1994},
		{"DE94T", DE1994T},
		{"CMC", DECMC},
		{"CMC 2:1", DECMC2},
		{"sample_id", SampleID},
		{"SampleID", SampleID},
		{"SAMPLE", SampleID},
		{"D_VISUAL", DVis},
		{"5CLR_3", FiveClr3},
		{"FIVECLR_3", FiveClr3},
		{"8clr_8", EightClr8},
		{"SPECTRAL_340", Spectral340},
		{"", Blank},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseField(tt.in)
			if err != nil {
				t.Fatalf("ParseField failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseField_Unknown(t *testing.T) {
	_, err := ParseField("NOT_A_FIELD")
	if !errors.Is(err, ErrUnknownFormatType) {
		t.Errorf("got %v, want ErrUnknownFormatType", err)
	}
}

func TestField_String(t *testing.T) {
	tests := []struct {
		f    Field
		want string
	}{
		{FiveClr1, "5CLR_1"},
		{SixClr6, "6CLR_6"},
		{SevenClr2, "7CLR_2"},
		{EightClr8, "8CLR_8"},
		{DE2000, "DE_2000"},
		{LabL, "LAB_L"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestField_IsNumeric(t *testing.T) {
	for _, f := range AllFields() {
		want := f != SampleID && f != SampleName && f != Blank
		if got := f.IsNumeric(); got != want {
			t.Errorf("%s.IsNumeric() = %v, want %v", f, got, want)
		}
	}
}

func TestSpectralBand(t *testing.T) {
	f, ok := SpectralBand(830)
	if !ok {
		t.Fatal("SpectralBand(830) not found")
	}
	if got := f.String(); got != "SPECTRAL_830" {
		t.Errorf("got %q", got)
	}

	for _, nm := range []int{330, 345, 840} {
		if _, ok := SpectralBand(nm); ok {
			t.Errorf("SpectralBand(%d) should not exist", nm)
		}
	}
}

func TestMethodField(t *testing.T) {
	for _, m := range deltae.Methods() {
		f := MethodField(m)
		got, ok := f.Method()
		if !ok || got != m {
			t.Errorf("MethodField(%s) = %s, which maps back to %s", m, f, got)
		}
	}
	if _, ok := LabL.Method(); ok {
		t.Error("LAB_L should not be a delta-E field")
	}
}

func TestLayout(t *testing.T) {
	l := Layout{SampleID, LabL, LabA, LabB}

	if got := l.Index(LabA); got != 2 {
		t.Errorf("Index(LAB_A) = %d, want 2", got)
	}
	if got := l.Index(CmykC); got != -1 {
		t.Errorf("Index(CMYK_C) = %d, want -1", got)
	}
	if !l.Equal(Layout{SampleID, LabL, LabA, LabB}) {
		t.Error("identical layouts should be equal")
	}
	if l.Equal(Layout{LabL, SampleID, LabA, LabB}) {
		t.Error("reordered layouts should differ")
	}
	if len(ColorBurstLayout()) != 7 {
		t.Errorf("ColorBurst layout has %d fields, want 7", len(ColorBurstLayout()))
	}
}

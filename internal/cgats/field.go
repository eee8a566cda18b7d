package cgats

import (
	"strconv"
	"strings"

	"github.com/ironsheep/cgats-tools/internal/deltae"
)

// Field is a semantic column type from the closed CGATS vocabulary.
type Field int

// Known fields. Spectral bands run from Spectral340 in 10 nm steps; use
// SpectralBand to address one by wavelength.
const (
	SampleID Field = iota
	SampleName
	Blank

	RgbR
	RgbG
	RgbB

	CmykC
	CmykM
	CmykY
	CmykK

	FiveClr1
	FiveClr2
	FiveClr3
	FiveClr4
	FiveClr5

	SixClr1
	SixClr2
	SixClr3
	SixClr4
	SixClr5
	SixClr6

	SevenClr1
	SevenClr2
	SevenClr3
	SevenClr4
	SevenClr5
	SevenClr6
	SevenClr7

	EightClr1
	EightClr2
	EightClr3
	EightClr4
	EightClr5
	EightClr6
	EightClr7
	EightClr8

	DRed
	DGreen
	DBlue
	DVis

	LabL
	LabA
	LabB
	LabC
	LabH

	DE1976
	DE1994
	DE1994T
	DECMC
	DECMC2
	DE2000

	XyzX
	XyzY
	XyzZ

	XyyX
	XyyY
	XyyCapY

	Spectral340
)

const (
	spectralFirstNM = 340
	spectralLastNM  = 830
	spectralStepNM  = 10
	spectralBands   = (spectralLastNM-spectralFirstNM)/spectralStepNM + 1

	fieldCount = int(Spectral340) + spectralBands
)

// rawNames holds the internal spelling of each non-spectral field. Multi-ink
// channels are spelled out here and rendered with digits by String.
var rawNames = map[Field]string{
	SampleID:   "SAMPLE_ID",
	SampleName: "SAMPLE_NAME",
	Blank:      "BLANK",

	RgbR: "RGB_R", RgbG: "RGB_G", RgbB: "RGB_B",

	CmykC: "CMYK_C", CmykM: "CMYK_M", CmykY: "CMYK_Y", CmykK: "CMYK_K",

	FiveClr1: "FIVECLR_1", FiveClr2: "FIVECLR_2", FiveClr3: "FIVECLR_3",
	FiveClr4: "FIVECLR_4", FiveClr5: "FIVECLR_5",

	SixClr1: "SIXCLR_1", SixClr2: "SIXCLR_2", SixClr3: "SIXCLR_3",
	SixClr4: "SIXCLR_4", SixClr5: "SIXCLR_5", SixClr6: "SIXCLR_6",

	SevenClr1: "SEVENCLR_1", SevenClr2: "SEVENCLR_2", SevenClr3: "SEVENCLR_3",
	SevenClr4: "SEVENCLR_4", SevenClr5: "SEVENCLR_5", SevenClr6: "SEVENCLR_6",
	SevenClr7: "SEVENCLR_7",

	EightClr1: "EIGHTCLR_1", EightClr2: "EIGHTCLR_2", EightClr3: "EIGHTCLR_3",
	EightClr4: "EIGHTCLR_4", EightClr5: "EIGHTCLR_5", EightClr6: "EIGHTCLR_6",
	EightClr7: "EIGHTCLR_7", EightClr8: "EIGHTCLR_8",

	DRed: "D_RED", DGreen: "D_GREEN", DBlue: "D_BLUE", DVis: "D_VIS",

	LabL: "LAB_L", LabA: "LAB_A", LabB: "LAB_B", LabC: "LAB_C", LabH: "LAB_H",

	DE1976: "DE_1976", DE1994: "DE_1994", DE1994T: "DE_1994T",
	DECMC: "DE_CMC", DECMC2: "DE_CMC2", DE2000: "DE_2000",

	XyzX: "XYZ_X", XyzY: "XYZ_Y", XyzZ: "XYZ_Z",

	XyyX: "XYY_X", XyyY: "XYY_Y", XyyCapY: "XYY_CAPY",
}

// extraAliases are the historical spellings accepted when parsing, in
// addition to each field's canonical form.
var extraAliases = map[Field][]string{
	SampleID:   {"SAMPLEID", "SAMPLE"},
	SampleName: {"SAMPLENAME"},
	Blank:      {""},
	DVis:       {"D_VISUAL"},
	DE1976:     {"LAB_DE", "DE1976", "DE76", "DE", "DE_76"},
	DE1994: {"LAB_DE_1994", "DE1994", "DE94", "DE1994G", "DE94G", "DE94_G",
		"DE_94", "DE_1994G", "DE_1994_G", "DE_94G", "DE_94_G"},
	DE1994T: {"LAB_DE_1994T", "DE1994T", "DE94T", "DE_1994_T", "DE_94T", "DE_94_T", "DE94_T"},
	DECMC:   {"LAB_DE_CMC", "DECMC", "DECMC1", "CMC", "CMC 1:1", "DE_CMC1", "DE_CMC_1"},
	DECMC2:  {"LAB_DE_CMC2", "DECMC2", "CMC2", "CMC 2:1", "DE_CMC_2", "DE_CMC 2:1", "DECMC_2"},
	DE2000:  {"LAB_DE_2001", "LAB_DE_2000", "DE2000", "DE00", "DE_00"},
}

var methodFields = map[Field]deltae.Method{
	DE1976:  deltae.DE1976,
	DE1994:  deltae.DE1994,
	DE1994T: deltae.DE1994T,
	DECMC:   deltae.DECMC1,
	DECMC2:  deltae.DECMC2,
	DE2000:  deltae.DE2000,
}

var (
	fieldNames   [fieldCount]string
	fieldAliases map[string]Field
)

var digitPrefixes = strings.NewReplacer(
	"FIVE", "5",
	"SIX", "6",
	"SEVEN", "7",
	"EIGHT", "8",
)

func init() {
	for f, raw := range rawNames {
		fieldNames[f] = digitPrefixes.Replace(raw)
	}
	for i := 0; i < spectralBands; i++ {
		nm := spectralFirstNM + i*spectralStepNM
		fieldNames[int(Spectral340)+i] = "SPECTRAL_" + strconv.Itoa(nm)
	}

	fieldAliases = make(map[string]Field, fieldCount*2)
	for f, raw := range rawNames {
		fieldAliases[raw] = f
	}
	for f, name := range fieldNames {
		fieldAliases[name] = Field(f)
	}
	for f, aliases := range extraAliases {
		for _, a := range aliases {
			fieldAliases[a] = f
		}
	}
}

// ParseField resolves a column token to a Field. Lookup is
// case-insensitive and accepts every historical alias; unknown tokens yield
// ErrUnknownFormatType.
func ParseField(s string) (Field, error) {
	if f, ok := fieldAliases[strings.ToUpper(s)]; ok {
		return f, nil
	}
	return 0, newError(KindUnknownFormatType, "parse field", "%q", s)
}

// String returns the canonical token written to DATA_FORMAT.
func (f Field) String() string {
	if f.valid() {
		return fieldNames[f]
	}
	return "Field(" + strconv.Itoa(int(f)) + ")"
}

func (f Field) valid() bool {
	return f >= 0 && int(f) < fieldCount
}

// IsNumeric reports whether cells of this field hold numbers. Only
// SAMPLE_ID, SAMPLE_NAME, and BLANK are textual.
func (f Field) IsNumeric() bool {
	switch f {
	case SampleID, SampleName, Blank:
		return false
	}
	return true
}

// Method returns the delta-E method a field stores, if it is a delta-E field.
func (f Field) Method() (deltae.Method, bool) {
	m, ok := methodFields[f]
	return m, ok
}

// MethodField returns the field that stores results of method m.
func MethodField(m deltae.Method) Field {
	for f, fm := range methodFields {
		if fm == m {
			return f
		}
	}
	return DE2000
}

// SpectralBand returns the field for a wavelength in nanometres. ok is false
// for wavelengths outside 340-830 or off the 10 nm grid.
func SpectralBand(nm int) (Field, bool) {
	if nm < spectralFirstNM || nm > spectralLastNM || (nm-spectralFirstNM)%spectralStepNM != 0 {
		return 0, false
	}
	return Spectral340 + Field((nm-spectralFirstNM)/spectralStepNM), true
}

// AllFields returns every known field in declaration order.
func AllFields() []Field {
	all := make([]Field, fieldCount)
	for i := range all {
		all[i] = Field(i)
	}
	return all
}

// Layout is the ordered list of fields declared in DATA_FORMAT. Cell i of
// every sample belongs to Layout[i].
type Layout []Field

// ColorBurstLayout is the implicit layout of ColorBurst linearization files.
func ColorBurstLayout() Layout {
	return Layout{DRed, DGreen, DBlue, DVis, LabL, LabA, LabB}
}

// Index returns the position of f, or -1 when absent.
func (l Layout) Index(f Field) int {
	for i, lf := range l {
		if lf == f {
			return i
		}
	}
	return -1
}

// Contains reports whether f appears in the layout.
func (l Layout) Contains(f Field) bool {
	return l.Index(f) >= 0
}

// Equal reports whether both layouts list the same fields in the same order.
func (l Layout) Equal(other Layout) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

// Names returns the canonical token of each field.
func (l Layout) Names() []string {
	names := make([]string, len(l))
	for i, f := range l {
		names[i] = f.String()
	}
	return names
}

func (l Layout) clone() Layout {
	return append(Layout(nil), l...)
}

// parseLayout parses a DATA_FORMAT record.
func parseLayout(rec Record) (Layout, error) {
	layout := make(Layout, 0, len(rec))
	for _, token := range rec {
		f, err := ParseField(token)
		if err != nil {
			return nil, err
		}
		layout = append(layout, f)
	}
	return layout, nil
}

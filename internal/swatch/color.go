package swatch

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/cgats-tools/internal/cgats"
	"github.com/ironsheep/cgats-tools/internal/deltae"
)

// RGBColor represents an sRGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSLColor represents a color in HSL space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// PatchColor is the display rendering of one measured sample.
type PatchColor struct {
	// Index is the zero-based sample index in the source document.
	Index int `json:"index"`

	Lab deltae.Lab `json:"lab"`
	Hex string     `json:"hex"`
	RGB RGBColor   `json:"rgb"`
	HSL HSLColor   `json:"hsl"`

	// OutOfGamut is true when the Lab value had to be clamped into sRGB.
	OutOfGamut bool `json:"out_of_gamut"`
}

// gamutTolerance absorbs rounding in the Lab to sRGB round trip.
const gamutTolerance = 1e-6

// LabToColor converts a Lab measurement to sRGB for display. Lab is taken
// as relative to the display white, so measured paper and neutrals render
// neutral. Colors outside sRGB are clamped, and ok reports whether the
// value was inside the gamut.
func LabToColor(lab deltae.Lab) (c colorful.Color, ok bool) {
	c = colorful.Lab(lab.L/100, lab.A/100, lab.B/100)
	ok = inGamut(c.R) && inGamut(c.G) && inGamut(c.B)
	return c.Clamped(), ok
}

func inGamut(v float64) bool {
	return v >= -gamutTolerance && v <= 1+gamutTolerance
}

// NewPatchColor renders lab for display.
func NewPatchColor(index int, lab deltae.Lab) PatchColor {
	c, ok := LabToColor(lab)
	r, g, b := c.RGB255()
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}

	return PatchColor{
		Index:      index,
		Lab:        lab,
		Hex:        fmt.Sprintf("#%02X%02X%02X", r, g, b),
		RGB:        RGBColor{R: r, G: g, B: b},
		HSL:        HSLColor{H: int(math.Round(h)), S: int(math.Round(s * 100)), L: int(math.Round(l * 100))},
		OutOfGamut: !ok,
	}
}

// SampleColors renders every sample of doc in table order.
//
// Parameters:
//   - doc: A document whose layout holds LAB_L, LAB_A, and LAB_B.
//
// Returns:
//   - []PatchColor: One entry per sample.
//   - error: cgats.ErrIncompleteData if the document has no Lab fields or a
//     Lab cell is not numeric.
func SampleColors(doc *cgats.Document) ([]PatchColor, error) {
	idx, err := doc.LabIndexes()
	if err != nil {
		return nil, err
	}

	patches := make([]PatchColor, 0, doc.SampleCount())
	err = doc.Samples.Each(func(index int, s cgats.Sample) error {
		lab, err := s.Lab(idx)
		if err != nil {
			return fmt.Errorf("sample %d: %w", index, err)
		}
		patches = append(patches, NewPatchColor(index, lab))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return patches, nil
}

// ParseHexColor parses a hex color string like "#FF0000" or "#FF000080".
func ParseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// labelColor picks a legible foreground for text drawn on a patch.
func labelColor(c colorful.Color) color.NRGBA {
	l, _, _ := c.Lab()
	if l > 0.55 {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
}

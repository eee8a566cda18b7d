package deltae

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Lab is a CIE L*a*b* triple on the conventional scale (L in 0-100).
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// go-colorful works on L in 0-1; its distances come back on the same scale.
const colorfulScale = 100.0

// toColorful maps a Lab value into go-colorful. The D65 constructor is the
// exact inverse of Color.Lab, which the distance functions use internally,
// so the round trip preserves the input triple.
func (l Lab) toColorful() colorful.Color {
	return colorful.Lab(l.L/colorfulScale, l.A/colorfulScale, l.B/colorfulScale)
}

// Compute returns the color difference between reference and sample using
// method m.
//
// DE1976, DE1994 (graphic arts weights) and DE2000 are delegated to
// go-colorful. DE1994T (textile weights) and the CMC l:c variants are
// computed here because go-colorful does not expose their weighting
// parameters.
func Compute(reference, sample Lab, m Method) float64 {
	switch m {
	case DE1976:
		return reference.toColorful().DistanceCIE76(sample.toColorful()) * colorfulScale
	case DE1994:
		return reference.toColorful().DistanceCIE94(sample.toColorful()) * colorfulScale
	case DE1994T:
		return cie94(reference, sample, 2.0, 0.048, 0.014)
	case DECMC1:
		return cmc(reference, sample, 1.0, 1.0)
	case DECMC2:
		return cmc(reference, sample, 2.0, 1.0)
	default:
		return reference.toColorful().DistanceCIEDE2000(sample.toColorful()) * colorfulScale
	}
}

// Round returns v rounded to the given number of decimal places.
func Round(v float64, places int) float64 {
	mult := math.Pow(10, float64(places))
	r := math.Round(v*mult) / mult
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

func chroma(l Lab) float64 {
	return math.Hypot(l.A, l.B)
}

// deltaHSquared is the squared hue difference, never negative.
func deltaHSquared(r, s Lab) float64 {
	da := r.A - s.A
	db := r.B - s.B
	dc := chroma(r) - chroma(s)
	return math.Max(0, da*da+db*db-dc*dc)
}

// cie94 implements CIE 1994 with kL, K1 and K2 as parameters; kC and kH are 1.
func cie94(r, s Lab, kl, k1, k2 float64) float64 {
	c1 := chroma(r)
	dl := r.L - s.L
	dc := c1 - chroma(s)
	dh2 := deltaHSquared(r, s)

	sl := 1.0
	sc := 1.0 + k1*c1
	sh := 1.0 + k2*c1

	vl := dl / (kl * sl)
	vc := dc / sc
	return math.Sqrt(vl*vl + vc*vc + dh2/(sh*sh))
}

// cmc implements CMC l:c, asymmetric in the reference color r.
func cmc(r, s Lab, l, c float64) float64 {
	c1 := chroma(r)
	dl := r.L - s.L
	dc := c1 - chroma(s)
	dh2 := deltaHSquared(r, s)

	h1 := math.Atan2(r.B, r.A) * 180 / math.Pi
	if h1 < 0 {
		h1 += 360
	}

	var t float64
	if h1 >= 164 && h1 <= 345 {
		t = 0.56 + math.Abs(0.2*math.Cos((h1+168)*math.Pi/180))
	} else {
		t = 0.36 + math.Abs(0.4*math.Cos((h1+35)*math.Pi/180))
	}

	c14 := c1 * c1 * c1 * c1
	f := math.Sqrt(c14 / (c14 + 1900))

	sl := 0.511
	if r.L >= 16 {
		sl = 0.040975 * r.L / (1 + 0.01765*r.L)
	}
	sc := 0.0638*c1/(1+0.0131*c1) + 0.638
	sh := sc * (f*t + 1 - f)

	vl := dl / (l * sl)
	vc := dc / (c * sc)
	return math.Sqrt(vl*vl + vc*vc + dh2/(sh*sh))
}

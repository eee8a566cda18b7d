package cgats

import "strings"

// Vendor is the dialect of a CGATS-family file.
type Vendor int

const (
	VendorCgats Vendor = iota
	VendorColorBurst
	VendorCurve
	VendorArgyll
	VendorXRite
)

var vendorNames = [...]string{
	VendorCgats:      "Cgats",
	VendorColorBurst: "ColorBurst",
	VendorCurve:      "Curve",
	VendorArgyll:     "Argyll",
	VendorXRite:      "XRite",
}

func (v Vendor) String() string {
	if int(v) >= 0 && int(v) < len(vendorNames) {
		return vendorNames[v]
	}
	return "Unknown"
}

// vendorKeywords is searched in order; the first keyword contained in the
// lower-cased first record wins.
var vendorKeywords = []struct {
	keyword string
	vendor  Vendor
}{
	{"cgats", VendorCgats},
	{"colorburst", VendorColorBurst},
	{"curve", VendorCurve},
	{"argyll", VendorArgyll},
	{"cti1", VendorArgyll},
	{"cti2", VendorArgyll},
	{"cti3", VendorArgyll},
	{"xrite", VendorXRite},
	{"x-rite", VendorXRite},
}

// DetectVendor classifies a document from its first record. The cells are
// lower-cased and concatenated before matching. A record that matches no
// keyword yields ErrUnknownVendor.
func DetectVendor(first Record) (Vendor, error) {
	var b strings.Builder
	for _, cell := range first {
		b.WriteString(strings.ToLower(cell))
	}
	s := b.String()

	for _, k := range vendorKeywords {
		if strings.Contains(s, k.keyword) {
			return k.vendor, nil
		}
	}
	return 0, newError(KindUnknownVendor, "detect vendor", "first line %q", strings.Join(first, "\t"))
}

package swatch

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/cgats-tools/internal/cgats"
)

// Defaults applied to zero-valued Options fields.
const (
	DefaultColumns    = 12
	DefaultPatchSize  = 48
	DefaultGutter     = 2
	DefaultBackground = "#FFFFFF"

	// MinPatchSize is the smallest patch that fits a label.
	MinPatchSize = 8
)

// Options controls the layout of a swatch sheet.
type Options struct {
	// Columns is the number of patches per row.
	Columns int

	// PatchSize is the edge length of each square patch in pixels.
	PatchSize int

	// Gutter is the spacing between patches and around the sheet. A negative
	// value removes it.
	Gutter int

	// Background is the sheet color as "#RRGGBB" or "#RRGGBBAA".
	Background string

	// Labels draws each patch's 1-based sample number in its corner.
	Labels bool

	// Scale resizes the finished sheet. Zero or 1 keeps it unchanged.
	Scale float64
}

func (o Options) withDefaults() Options {
	if o.Columns <= 0 {
		o.Columns = DefaultColumns
	}
	if o.PatchSize <= 0 {
		o.PatchSize = DefaultPatchSize
	}
	if o.Gutter < 0 {
		o.Gutter = 0
	} else if o.Gutter == 0 {
		o.Gutter = DefaultGutter
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	return o
}

// SheetResult contains the rendered swatch sheet.
type SheetResult struct {
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Count       int          `json:"count"`
	Columns     int          `json:"columns"`
	Rows        int          `json:"rows"`
	OutOfGamut  int          `json:"out_of_gamut"`
	Patches     []PatchColor `json:"patches,omitempty"`
	ImageBase64 string       `json:"image_base64"`
	MimeType    string       `json:"mime_type"`
}

// Draw lays out one square patch per sample of doc, in table order, on a
// grid of opts.Columns columns.
//
// Parameters:
//   - doc: A document with LAB_L, LAB_A, and LAB_B fields.
//   - opts: Layout options. Zero values take the package defaults.
//
// Returns:
//   - *image.NRGBA: The sheet.
//   - []PatchColor: The color used for each patch.
//   - error: cgats.ErrIncompleteData when doc has no usable Lab data, or a
//     parse error for a malformed background color.
func Draw(doc *cgats.Document, opts Options) (*image.NRGBA, []PatchColor, error) {
	opts = opts.withDefaults()
	if opts.PatchSize < MinPatchSize {
		return nil, nil, fmt.Errorf("patch size %d is below the minimum of %d", opts.PatchSize, MinPatchSize)
	}

	if opts.Scale < 0 {
		return nil, nil, fmt.Errorf("scale %v must not be negative", opts.Scale)
	}

	bg, err := ParseHexColor(opts.Background)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse background: %w", err)
	}

	patches, err := SampleColors(doc)
	if err != nil {
		return nil, nil, err
	}
	if len(patches) == 0 {
		return nil, nil, cgats.NewError(cgats.KindIncompleteData, "swatch", "document has no samples")
	}

	cols := opts.Columns
	if len(patches) < cols {
		cols = len(patches)
	}
	rows := (len(patches) + cols - 1) / cols

	step := opts.PatchSize + opts.Gutter
	width := cols*step + opts.Gutter
	height := rows*step + opts.Gutter

	sheet := imaging.New(width, height, bg)
	for i, p := range patches {
		c, _ := LabToColor(p.Lab)
		patch := imaging.New(opts.PatchSize, opts.PatchSize, color.NRGBA{R: p.RGB.R, G: p.RGB.G, B: p.RGB.B, A: 255})
		if opts.Labels {
			drawLabel(patch, 2, 2, strconv.Itoa(p.Index+1), labelColor(c))
		}

		x := opts.Gutter + (i%cols)*step
		y := opts.Gutter + (i/cols)*step
		sheet = imaging.Paste(sheet, patch, image.Pt(x, y))
	}

	if opts.Scale > 0 && opts.Scale != 1 {
		w := int(float64(width) * opts.Scale)
		h := int(float64(height) * opts.Scale)
		if w < 1 || h < 1 {
			return nil, nil, fmt.Errorf("scale %v leaves an empty sheet", opts.Scale)
		}
		// Nearest neighbor keeps patch edges and label pixels sharp.
		sheet = imaging.Resize(sheet, w, h, imaging.NearestNeighbor)
	}

	return sheet, patches, nil
}

// Render draws doc's swatch sheet and encodes it as a base64 PNG.
func Render(doc *cgats.Document, opts Options) (*SheetResult, error) {
	sheet, patches, err := Draw(doc, opts)
	if err != nil {
		return nil, err
	}
	return Encode(sheet, patches, opts)
}

// Encode wraps a sheet returned by Draw, with its patches, as a base64 PNG
// SheetResult. opts must be the options the sheet was drawn with.
func Encode(sheet *image.NRGBA, patches []PatchColor, opts Options) (*SheetResult, error) {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, sheet); err != nil {
		return nil, fmt.Errorf("failed to encode swatch sheet: %w", err)
	}

	opts = opts.withDefaults()
	cols := opts.Columns
	if len(patches) < cols {
		cols = len(patches)
	}

	outOfGamut := 0
	for _, p := range patches {
		if p.OutOfGamut {
			outOfGamut++
		}
	}

	return &SheetResult{
		Width:       sheet.Bounds().Dx(),
		Height:      sheet.Bounds().Dy(),
		Count:       len(patches),
		Columns:     cols,
		Rows:        (len(patches) + cols - 1) / cols,
		OutOfGamut:  outOfGamut,
		Patches:     patches,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Save writes img to path as PNG.
func Save(img image.Image, path string) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save swatch sheet: %w", err)
	}
	return nil
}

// drawLabel draws text with a 3x5 pixel digit font at (x, y).
func drawLabel(img draw.Image, x, y int, text string, fg color.Color) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
	}

	bounds := img.Bounds()
	charWidth := 4

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				px, py := cx+col, y+row
				if image.Pt(px, py).In(bounds) {
					img.Set(px, py, fg)
				}
			}
		}
		cx += charWidth
	}
}

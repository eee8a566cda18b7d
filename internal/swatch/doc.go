// Package swatch renders the Lab samples of a CGATS document as a PNG
// sheet of color patches.
//
// Lab values are rendered relative to the display white, so the measured
// paper shows as white and neutrals stay neutral. Colors outside sRGB are
// clamped and counted in SheetResult.OutOfGamut.
//
// Patches are laid out left to right, top to bottom, in sample order:
//
//	gutter | patch | gutter | patch | ... | gutter
//
// With Options.Labels set, each patch carries its 1-based sample number.
package swatch

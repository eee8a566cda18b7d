// Package deltae computes perceptual color differences between two CIE
// L*a*b* values.
//
// The supported formulas are CIE76 (DE1976), CIE94 with graphic-arts
// weights (DE1994) and textile weights (DE1994T), CMC l:c at 1:1 (DECMC1)
// and 2:1 (DECMC2), and CIEDE2000 (DE2000). Inputs use the conventional
// Lab scale with L from 0 to 100.
//
// CMC and the textile CIE94 variant are asymmetric: the first argument is
// treated as the reference color.
package deltae

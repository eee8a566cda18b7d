// Package cgats parses and writes CGATS-family color measurement files.
//
// A file is a sequence of tab-delimited lines: a first line naming the
// vendor dialect, free-form metadata, an optional BEGIN_DATA_FORMAT block
// declaring the column layout, and a BEGIN_DATA block holding one sample
// per line. ColorBurst files omit the format block and use a fixed
// density/Lab layout.
//
// # Parsing
//
// Parse runs the whole pipeline in one step:
//
//	records -> vendor -> metadata / layout / data -> validated sample table
//
// and either returns a complete *Document or a single *Error. There is no
// partial result.
//
// # Fields
//
// Column types form a closed set (Field). ParseField accepts every
// historical alias case-insensitively; Field.String returns the canonical
// token, so parsing the output of String always yields the same Field.
//
// # Errors
//
// Every failure is an *Error carrying a Kind plus context. Use errors.Is
// with the Err* sentinels to test the kind:
//
//	if errors.Is(err, cgats.ErrNoData) { ... }
//
// # Thread Safety
//
// Documents are plain values and are not synchronized. DocumentCache is
// safe for concurrent use; documents it returns are shared and must be
// cloned before modification.
package cgats

package cgats

import (
	"bytes"
	"io"
	"strings"
	"unicode"
)

// Record is one logical line of a file split into tab-delimited cells.
type Record []string

// First returns the first cell, or "" for an empty record.
func (r Record) First() string {
	if len(r) == 0 {
		return ""
	}
	return r[0]
}

func (r Record) clone() Record {
	return append(Record(nil), r...)
}

func (r Record) String() string {
	return strings.Join(r, "\t")
}

// ReadRecords reads r to completion and splits it into records.
func ReadRecords(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &Error{Kind: KindFileError, Op: "read", Err: err}
	}
	return SplitRecords(data)
}

// SplitRecords turns file contents into records.
//
// Each physical line has trailing whitespace removed, is split again on any
// embedded carriage returns (old Mac line endings), and every non-empty
// piece is split on tabs with each cell trimmed. An input without any
// non-empty line yields ErrEmptyFile.
func SplitRecords(data []byte) ([]Record, error) {
	var records []Record

	for _, line := range bytes.Split(data, []byte("\n")) {
		text := strings.TrimRightFunc(string(line), unicode.IsSpace)

		for _, piece := range strings.Split(text, "\r") {
			piece = strings.TrimRightFunc(piece, unicode.IsSpace)
			if strings.TrimSpace(piece) == "" {
				continue
			}

			cells := strings.Split(piece, "\t")
			rec := make(Record, len(cells))
			for i, c := range cells {
				rec[i] = strings.TrimSpace(c)
			}
			records = append(records, rec)
		}
	}

	if len(records) == 0 {
		return nil, newError(KindEmptyFile, "read", "%d bytes", len(data))
	}
	return records, nil
}

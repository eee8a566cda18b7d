package cgats

// Bookend tags delimiting the format-declaration and data sections.
const (
	TagBeginDataFormat = "BEGIN_DATA_FORMAT"
	TagEndDataFormat   = "END_DATA_FORMAT"
	TagBeginData       = "BEGIN_DATA"
	TagEndData         = "END_DATA"
)

func isBookend(cell string) bool {
	switch cell {
	case TagBeginDataFormat, TagEndDataFormat, TagBeginData, TagEndData:
		return true
	}
	return false
}

// ExtractMetadata returns every record outside the bookend sections. Any
// bookend tag in the first cell toggles collection; the tags themselves are
// never collected.
func ExtractMetadata(records []Record) []Record {
	var meta []Record
	collecting := true
	for _, rec := range records {
		if isBookend(rec.First()) {
			collecting = !collecting
			continue
		}
		if collecting {
			meta = append(meta, rec.clone())
		}
	}
	return meta
}

// ExtractLayout returns the field layout. ColorBurst documents use their
// implicit layout; all others take the record following BEGIN_DATA_FORMAT.
func ExtractLayout(records []Record, vendor Vendor) (Layout, error) {
	if vendor == VendorColorBurst {
		return ColorBurstLayout(), nil
	}

	for i, rec := range records {
		if rec.First() != TagBeginDataFormat {
			continue
		}
		if i+1 >= len(records) || records[i+1].First() == TagEndDataFormat {
			break
		}
		return parseLayout(records[i+1])
	}
	return nil, newError(KindNoDataFormat, "extract format", "")
}

// ExtractData returns the records between BEGIN_DATA and END_DATA. A
// missing END_DATA collects to the end of the input.
func ExtractData(records []Record) ([]Record, error) {
	var data []Record
	in := false
	for _, rec := range records {
		if !in {
			in = rec.First() == TagBeginData
			continue
		}
		if rec.First() == TagEndData {
			break
		}
		data = append(data, rec)
	}
	if len(data) == 0 {
		return nil, newError(KindNoData, "extract data", "")
	}
	return data, nil
}

// validateData checks that every data record has one cell per field.
func validateData(layout Layout, data []Record) error {
	for i, rec := range data {
		if len(rec) != len(layout) {
			return newError(KindFormatDataMismatch, "validate",
				"data line %d has %d values, DATA_FORMAT has %d fields", i+1, len(rec), len(layout))
		}
	}
	return nil
}

// mapData builds the sample table: record i becomes the sample at index i.
func mapData(data []Record) *SampleTable {
	table := NewSampleTable()
	for i, rec := range data {
		table.Set(i, NewSample(rec))
	}
	return table
}

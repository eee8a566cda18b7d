// Package export writes CGATS documents to other file formats.
//
// WriteFile and Write produce an XLSX workbook with a Data sheet (header
// row of field names, one row per sample) and a Metadata sheet.
package export

// Package server implements the MCP (Model Context Protocol) server for CGATS
// measurement tools.
//
// The protocol layer comes from github.com/mark3labs/mcp-go. This package
// defines the tools, their handlers, and the document cache shared between
// calls.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0. Logs go to stderr.
//
// # Available Tools
//
// Inspection:
//   - cgats_load: Detect vendor and summarize fields and metadata
//   - cgats_show: Re-serialize a document as CGATS.17 text
//
// Comparison:
//   - cgats_average: Per-cell mean of several documents
//   - cgats_concatenate: Join documents with identical layouts
//   - cgats_delta_e: Per-sample color difference of two documents
//   - cgats_report: Best/worst summary of a delta-E result
//
// Output:
//   - cgats_swatches: Render Lab values as a PNG patch sheet
//   - cgats_export_xlsx: Write a document to an Excel workbook
//
// # Document Caching
//
// Parsed files are cached by path until a tool writes output_file to that
// path, after which the file is read again on next use. Comparison
// results are stored under a "result:<uuid>" id that any path argument
// accepts, so results can be chained without touching disk.
//
// # Error Handling
//
// Tool failures are returned as tool results with isError set and the error
// text as content, not as JSON-RPC errors.
//
// # Usage
//
//	srv := server.New(cfg, version)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server

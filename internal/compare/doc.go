// Package compare combines and compares parsed CGATS documents.
//
// Average and Concatenate merge a collection of documents. DeltaE compares
// two documents sample by sample and returns a two-column result document,
// which NewReport summarizes into overall, best, and worst statistics.
//
// All functions are pure: inputs are never modified and every result is a
// new *cgats.Document. Failures are *cgats.Error values.
package compare

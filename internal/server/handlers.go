package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ironsheep/cgats-tools/internal/cgats"
	"github.com/ironsheep/cgats-tools/internal/compare"
	"github.com/ironsheep/cgats-tools/internal/deltae"
	"github.com/ironsheep/cgats-tools/internal/export"
	"github.com/ironsheep/cgats-tools/internal/swatch"
)

// OperationResult describes a document produced by a comparison tool.
type OperationResult struct {
	// ResultID can be passed as a path to later tool calls.
	ResultID string `json:"result_id"`

	Vendor      string   `json:"vendor"`
	SampleCount int      `json:"sample_count"`
	Fields      []string `json:"fields"`

	// OutputFile is set when the result was also written to disk.
	OutputFile string `json:"output_file,omitempty"`

	// Report holds the delta-E report text when one was requested.
	Report string `json:"report,omitempty"`

	// Content is the result serialized as CGATS text.
	Content string `json:"content"`
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// argKeys returns the argument names of req, sorted.
func argKeys(req mcp.CallToolRequest) []string {
	args := req.GetArguments()
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// === Inspection Handlers ===

func (s *Server) handleLoad(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return s.toolError("cgats_load", err)
	}

	info, err := cgats.LoadDocumentInfo(s.cache, path)
	if err != nil {
		return s.toolError("cgats_load", err)
	}
	return mcp.NewToolResultText(mustMarshalJSON(info)), nil
}

func (s *Server) handleShow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return s.toolError("cgats_show", err)
	}

	doc, err := s.cache.Load(path)
	if err != nil {
		return s.toolError("cgats_show", err)
	}
	return mcp.NewToolResultText(doc.Serialize()), nil
}

// === Comparison Handlers ===

func (s *Server) handleAverage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docs, err := s.loadFiles(req)
	if err != nil {
		return s.toolError("cgats_average", err)
	}

	avg, err := compare.Average(docs)
	if err != nil {
		return s.toolError("cgats_average", err)
	}

	res, err := s.storeResult(avg, req.GetString("output_file", ""))
	if err != nil {
		return s.toolError("cgats_average", err)
	}
	return mcp.NewToolResultText(mustMarshalJSON(res)), nil
}

func (s *Server) handleConcatenate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docs, err := s.loadFiles(req)
	if err != nil {
		return s.toolError("cgats_concatenate", err)
	}

	joined, err := compare.Concatenate(docs)
	if err != nil {
		return s.toolError("cgats_concatenate", err)
	}

	res, err := s.storeResult(joined, req.GetString("output_file", ""))
	if err != nil {
		return s.toolError("cgats_concatenate", err)
	}
	return mcp.NewToolResultText(mustMarshalJSON(res)), nil
}

func (s *Server) handleDeltaE(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	method := s.cfg.Method()
	if name := req.GetString("method", ""); name != "" {
		m, err := deltae.ParseMethod(name)
		if err != nil {
			return s.toolError("cgats_delta_e", err)
		}
		method = m
	}

	docs, err := s.loadFiles(req)
	if err != nil {
		return s.toolError("cgats_delta_e", err)
	}

	result, err := compare.DeltaE(docs, method)
	if err != nil {
		return s.toolError("cgats_delta_e", err)
	}

	var report string
	if req.GetBool("report", false) {
		r, err := compare.NewReport(result, req.GetFloat("split", s.cfg.Report.Split))
		if err != nil {
			return s.toolError("cgats_delta_e", err)
		}
		report = r.String()
	}

	res, err := s.storeResult(result, req.GetString("output_file", ""))
	if err != nil {
		return s.toolError("cgats_delta_e", err)
	}
	res.Report = report
	return mcp.NewToolResultText(mustMarshalJSON(res)), nil
}

func (s *Server) handleReport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return s.toolError("cgats_report", err)
	}

	doc, err := s.cache.Load(path)
	if err != nil {
		return s.toolError("cgats_report", err)
	}

	r, err := compare.NewReport(doc, req.GetFloat("split", s.cfg.Report.Split))
	if err != nil {
		return s.toolError("cgats_report", err)
	}
	return mcp.NewToolResultText(r.String()), nil
}

// === Output Handlers ===

func (s *Server) handleSwatches(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return s.toolError("cgats_swatches", err)
	}

	doc, err := s.cache.Load(path)
	if err != nil {
		return s.toolError("cgats_swatches", err)
	}

	opts := s.cfg.SwatchOptions()
	opts.Columns = req.GetInt("columns", opts.Columns)
	opts.PatchSize = req.GetInt("patch_size", opts.PatchSize)
	opts.Labels = req.GetBool("labels", opts.Labels)
	opts.Scale = req.GetFloat("scale", 1.0)

	img, patches, err := swatch.Draw(doc, opts)
	if err != nil {
		return s.toolError("cgats_swatches", err)
	}

	if out := req.GetString("output_file", ""); out != "" {
		if err := swatch.Save(img, out); err != nil {
			return s.toolError("cgats_swatches", &cgats.Error{Kind: cgats.KindWriteError, Op: "save", Path: out, Err: err})
		}
	}

	sheet, err := swatch.Encode(img, patches, opts)
	if err != nil {
		return s.toolError("cgats_swatches", err)
	}

	summary := *sheet
	summary.ImageBase64 = ""
	summary.Patches = nil
	text := fmt.Sprintf("Swatch sheet for %s\n%s", path, mustMarshalJSON(summary))
	return mcp.NewToolResultImage(text, sheet.ImageBase64, sheet.MimeType), nil
}

func (s *Server) handleExportXLSX(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return s.toolError("cgats_export_xlsx", err)
	}
	out, err := req.RequireString("output_file")
	if err != nil {
		return s.toolError("cgats_export_xlsx", err)
	}

	doc, err := s.cache.Load(path)
	if err != nil {
		return s.toolError("cgats_export_xlsx", err)
	}

	res, err := export.WriteFile(doc, out)
	if err != nil {
		return s.toolError("cgats_export_xlsx", err)
	}
	return mcp.NewToolResultText(mustMarshalJSON(res)), nil
}

// === Helpers ===

// loadFiles resolves the "files" argument through the document cache.
func (s *Server) loadFiles(req mcp.CallToolRequest) ([]*cgats.Document, error) {
	files, err := req.RequireStringSlice("files")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, cgats.NewError(cgats.KindNoData, "load", "no files given")
	}
	return s.cache.LoadAll(files)
}

// storeResult caches doc under a new result id and, when out is set,
// writes it to disk. A cached copy of out is dropped so the next load
// reads the new file.
func (s *Server) storeResult(doc *cgats.Document, out string) (*OperationResult, error) {
	if out != "" {
		if err := doc.WriteFile(out); err != nil {
			return nil, err
		}
		s.cache.Evict(out)
	}

	return &OperationResult{
		ResultID:    s.cache.Store(doc),
		Vendor:      doc.Vendor.String(),
		SampleCount: doc.SampleCount(),
		Fields:      doc.Layout.Names(),
		OutputFile:  out,
		Content:     doc.Serialize(),
	}, nil
}

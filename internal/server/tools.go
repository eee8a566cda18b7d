package server

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/ironsheep/cgats-tools/internal/deltae"
)

const pathDescription = "Absolute path to a CGATS file, or a result id (result:<uuid>) returned by an earlier call"

var filesItems = map[string]interface{}{"type": "string"}

// methodNames lists the accepted delta-E method names for tool schemas.
func methodNames() []string {
	methods := deltae.Methods()
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.String()
	}
	return names
}

// ToolDefinitions returns all available tools
func ToolDefinitions() []mcp.Tool {
	return []mcp.Tool{
		// Inspection
		mcp.NewTool("cgats_load",
			mcp.WithDescription("Load a CGATS measurement file and summarize it: detected vendor, sample count, data fields and metadata lines. Use this first to check whether a file can be compared or rendered."),
			mcp.WithString("path", mcp.Required(), mcp.Description(pathDescription)),
		),
		mcp.NewTool("cgats_show",
			mcp.WithDescription("Return a CGATS file or stored result re-serialized as canonical CGATS.17 text."),
			mcp.WithString("path", mcp.Required(), mcp.Description(pathDescription)),
		),

		// Comparison
		mcp.NewTool("cgats_average",
			mcp.WithDescription("Average the samples of several CGATS files with matching layouts and sample counts. Numeric cells are averaged; text cells come from the first file. Returns the result as CGATS text plus a result id."),
			mcp.WithArray("files", mcp.Required(), mcp.Items(filesItems),
				mcp.Description("Paths or result ids of the documents to average")),
			mcp.WithString("output_file", mcp.Description("Optional path to write the result to")),
		),
		mcp.NewTool("cgats_concatenate",
			mcp.WithDescription("Append the samples of several CGATS files with identical layouts into one document, renumbering SAMPLE_ID from 1."),
			mcp.WithArray("files", mcp.Required(), mcp.Items(filesItems),
				mcp.Description("Paths or result ids of the documents to join, in order")),
			mcp.WithString("output_file", mcp.Description("Optional path to write the result to")),
		),
		mcp.NewTool("cgats_delta_e",
			mcp.WithDescription("Compute the per-sample color difference between a reference and a sample CGATS file, both with LAB_L/LAB_A/LAB_B data. Optionally include a best/worst summary report."),
			mcp.WithArray("files", mcp.Required(), mcp.Items(filesItems),
				mcp.Description("Exactly two paths or result ids: reference first, then sample")),
			mcp.WithString("method", mcp.Enum(methodNames()...),
				mcp.Description("Delta-E formula (default from server config, normally DE2000)")),
			mcp.WithBoolean("report", mcp.Description("Include a summary report of the differences (default: false)")),
			mcp.WithNumber("split", mcp.Min(0), mcp.Max(1),
				mcp.Description("Fraction of samples counted as the best group in the report (default: 0.9)")),
			mcp.WithString("output_file", mcp.Description("Optional path to write the result to")),
		),
		mcp.NewTool("cgats_report",
			mcp.WithDescription("Summarize a delta-E result (mean, min, max, standard deviation) overall and for the best and worst groups of samples."),
			mcp.WithString("path", mcp.Required(), mcp.Description(pathDescription+" containing a delta-E field")),
			mcp.WithNumber("split", mcp.Min(0), mcp.Max(1),
				mcp.Description("Fraction of samples counted as the best group (default: 0.9)")),
		),

		// Output
		mcp.NewTool("cgats_swatches",
			mcp.WithDescription("Render the Lab values of a CGATS file as a sheet of color patches, returned as a PNG image. Colors outside sRGB are clamped and counted."),
			mcp.WithString("path", mcp.Required(), mcp.Description(pathDescription)),
			mcp.WithNumber("columns", mcp.Description("Patches per row (default: 12)")),
			mcp.WithNumber("patch_size", mcp.Description("Patch edge length in pixels (default: 48)")),
			mcp.WithBoolean("labels", mcp.Description("Draw the sample number on each patch (default: true)")),
			mcp.WithNumber("scale", mcp.Description("Resize factor applied to the finished sheet (default: 1.0)")),
			mcp.WithString("output_file", mcp.Description("Optional path to also save the PNG to")),
		),
		mcp.NewTool("cgats_export_xlsx",
			mcp.WithDescription("Export a CGATS file to an Excel workbook with a Data sheet (one row per sample) and a Metadata sheet."),
			mcp.WithString("path", mcp.Required(), mcp.Description(pathDescription)),
			mcp.WithString("output_file", mcp.Required(), mcp.Description("Path of the .xlsx file to write")),
		),
	}
}

// ToolNames returns the names of all tools in definition order.
func ToolNames() []string {
	defs := ToolDefinitions()
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	return names
}

// tools pairs each definition with its handler.
func (s *Server) tools() []mcpserver.ServerTool {
	handlers := map[string]mcpserver.ToolHandlerFunc{
		"cgats_load":        s.handleLoad,
		"cgats_show":        s.handleShow,
		"cgats_average":     s.handleAverage,
		"cgats_concatenate": s.handleConcatenate,
		"cgats_delta_e":     s.handleDeltaE,
		"cgats_report":      s.handleReport,
		"cgats_swatches":    s.handleSwatches,
		"cgats_export_xlsx": s.handleExportXLSX,
	}

	defs := ToolDefinitions()
	tools := make([]mcpserver.ServerTool, 0, len(defs))
	for _, def := range defs {
		h, ok := handlers[def.Name]
		if !ok {
			panic("server: no handler for tool " + def.Name)
		}
		tools = append(tools, mcpserver.ServerTool{Tool: def, Handler: s.logged(def.Name, h)})
	}
	return tools
}

// logged wraps a handler with debug logging of the call.
func (s *Server) logged(name string, h mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := s.log.WithField("tool", name)
		log.WithField("args", strings.Join(argKeys(req), ",")).Debug("tool called")

		res, err := h(ctx, req)
		if err == nil && res != nil && !res.IsError {
			log.Debug("tool succeeded")
		}
		return res, err
	}
}

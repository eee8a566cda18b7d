package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/cgats-tools/internal/cgats"
	"github.com/ironsheep/cgats-tools/internal/config"
	"github.com/ironsheep/cgats-tools/internal/logging"
)

// Name is the server name reported during the MCP handshake.
const Name = "cgats-tools-mcp"

// Server handles MCP protocol communication
type Server struct {
	mcp   *mcpserver.MCPServer
	cache *cgats.DocumentCache
	cfg   *config.Config
	log   *logrus.Entry
}

// New creates a new MCP server instance with every tool registered.
// A nil cfg uses config.Default().
func New(cfg *config.Config, version string) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if version == "" {
		version = "dev"
	}

	s := &Server{
		cache: cgats.NewDocumentCache(),
		cfg:   cfg,
		log:   logging.New("server"),
	}
	s.mcp = mcpserver.NewMCPServer(Name, version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
	)
	s.mcp.AddTools(s.tools()...)

	return s
}

// MCPServer exposes the underlying protocol server, e.g. for other transports.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcp
}

// Run serves MCP over stdin/stdout until stdin closes.
func (s *Server) Run() error {
	s.log.WithField("tools", len(ToolNames())).Info("serving on stdio")
	return mcpserver.ServeStdio(s.mcp)
}

// toolError logs a failed tool call and converts err into an error result,
// so the client sees the message instead of a protocol failure.
func (s *Server) toolError(tool string, err error) (*mcp.CallToolResult, error) {
	s.log.WithFields(logrus.Fields{
		"tool": tool,
		"kind": cgats.KindOf(err).String(),
	}).WithError(err).Warn("tool call failed")
	return mcp.NewToolResultError(err.Error()), nil
}

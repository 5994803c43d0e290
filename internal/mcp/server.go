package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/opspanel/internal/apiclient"
	"github.com/ziadkadry99/opspanel/internal/history"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the panel's actions as tools.
type Server struct {
	client   *apiclient.Client
	recorder *history.Recorder
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server bound to client. recorder may be nil.
func NewServer(client *apiclient.Client, recorder *history.Recorder) *Server {
	s := &Server{
		client:   client,
		recorder: recorder,
	}

	s.mcp = server.NewMCPServer(
		"opspanel",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(healthCheckTool, s.handleHealthCheck)
	s.mcp.AddTool(submitItemTool, s.handleSubmitItem)
	s.mcp.AddTool(createUserTool, s.handleCreateUser)
	s.mcp.AddTool(listUsersTool, s.handleListUsers)
	s.mcp.AddTool(setKeyTool, s.handleSetKey)
	s.mcp.AddTool(triggerFunc1Tool, s.handleTriggerFunc1)
	s.mcp.AddTool(triggerFunc2Tool, s.handleTriggerFunc2)
	s.mcp.AddTool(getMetricsTool, s.handleGetMetrics)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}

package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/desktop-blur/internal/blur"
	"github.com/mj1618/desktop-blur/internal/model"
	"github.com/mj1618/desktop-blur/internal/output"
	"github.com/mj1618/desktop-blur/internal/platform"
	"github.com/mj1618/desktop-blur/internal/version"
)

// mcpServer wraps the MCP server with the platform provider and cache.
type mcpServer struct {
	provider   *platform.Provider
	windows    *mcpWindowCache
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server with all desktop-blur tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	return newMCPServerWithProvider(provider, cfg), nil
}

func newMCPServerWithProvider(provider *platform.Provider, cfg MCPConfig) *mcpServer {
	s := &mcpServer{provider: provider}
	if provider.WindowLister != nil {
		s.windows = newMCPWindowCache(provider.WindowLister, cfg.CacheTTL)
	}

	s.mcp = mcpserver.NewMCPServer(
		"desktop-blur",
		version.Version,
	)

	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list",
			mcp.WithDescription("List top-level desktop windows with their handles, titles, executables and PIDs"),
			mcp.WithString("app", mcp.Description("Filter by executable name")),
			mcp.WithNumber("pid", mcp.Description("Filter by process ID")),
			mcp.WithBoolean("all", mcp.Description("Include hidden windows")),
		),
		s.handleList,
	)

	s.mcp.AddTool(
		mcp.NewTool("blur",
			mcp.WithDescription("Apply a translucent blur-behind (acrylic) effect to one window. Reports which mechanism applied; a failed effect is not an error."),
			mcp.WithString("app", mcp.Description("Target window by executable name")),
			mcp.WithString("window", mcp.Description("Target window by title substring")),
			mcp.WithString("window-id", mcp.Description("Target window by handle (decimal or 0x hex)")),
			mcp.WithNumber("pid", mcp.Description("Target window by process ID")),
			mcp.WithString("tint", mcp.Description("Acrylic tint: #RRGGBB, #AARRGGBB, or a color name (default #7F1E1E1E)")),
			mcp.WithNumber("alpha", mcp.Description("Override the tint alpha (1-255)")),
		),
		s.handleBlur,
	)
}

// toText serializes v in the current output format for an MCP response.
func toText(v interface{}) string {
	text, err := output.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return text
}

func (s *mcpServer) handleList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if s.windows == nil {
		return mcp.NewToolResultError("window listing not available on this platform"), nil
	}

	windows, err := s.windows.ListWindows(platform.ListOptions{
		PID:         IntParam(params, "pid", 0),
		App:         StringParam(params, "app", ""),
		VisibleOnly: !BoolParam(params, "all", false),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toText(windows)), nil
}

func (s *mcpServer) handleBlur(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	windowID, err := WindowIDParam(params, "window-id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	alpha := IntParam(params, "alpha", 0)
	if alpha < 0 || alpha > 255 {
		return mcp.NewToolResultError(fmt.Sprintf("alpha must be between 1 and 255, or 0 to keep the tint's alpha, got %d", alpha)), nil
	}
	tint, err := parseTintFlags(StringParam(params, "tint", ""), alpha)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	target := model.Target{
		App:      StringParam(params, "app", ""),
		Window:   StringParam(params, "window", ""),
		WindowID: windowID,
		PID:      IntParam(params, "pid", 0),
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	var lister platform.WindowLister
	if s.windows != nil {
		lister = s.windows
	}
	result, err := applyBlur(s.provider, lister, target, blur.Options{Tint: tint})
	if err != nil {
		if s.windows != nil {
			// The window may have closed since the list was cached.
			s.windows.invalidate()
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toText(result)), nil
}

// Package mcp exposes the volume engine to LLM clients via the Model
// Context Protocol. Tools and resources run against either a local
// database or a remote server over its REST API.
package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("VolumeAdvisor", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Adaptive training volume server. Query per-muscle volume summaries, fatigue alerts, mesocycle analyses, exercise progression, and recovery correlations. All data is scoped to the authenticated user."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetVolumeProfile, Handler: h.getVolumeProfile},
		server.ServerTool{Tool: toolGetVolumeSummary, Handler: h.getVolumeSummary},
		server.ServerTool{Tool: toolGetFatigueAlerts, Handler: h.getFatigueAlerts},
		server.ServerTool{Tool: toolAnalyzeMesocycle, Handler: h.analyzeMesocycle},
		server.ServerTool{Tool: toolGetExerciseProgression, Handler: h.getExerciseProgression},
		server.ServerTool{Tool: toolGetRecoveryCorrelation, Handler: h.getRecoveryCorrelation},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resVolumeStatus, Handler: h.volumeStatus},
		server.ServerResource{Resource: resVolumeProfile, Handler: h.volumeProfile},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resVolumeStatus = mcp.NewResource(
	"volume://status",
	"Volume Status",
	mcp.WithResourceDescription("Current per-muscle weekly volume summary plus any active fatigue alerts"),
	mcp.WithMIMEType("application/json"),
)

var resVolumeProfile = mcp.NewResource(
	"volume://profile",
	"Volume Profile",
	mcp.WithResourceDescription("Learned per-muscle volume tolerances (MEV/MRV) with confidence levels"),
	mcp.WithMIMEType("application/json"),
)

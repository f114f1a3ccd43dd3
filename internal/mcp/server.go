// Package mcp exposes the workout log to AI assistants over the Model
// Context Protocol.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/meltforce/buff/internal/app"
)

// New creates an MCP server with all tools and resources registered.
func New(a *app.App, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Buff", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Buff strength-tracking server. Log sets, query workout sessions, rep records, 1RM estimates, milestone badges, body composition and trends."),
	)

	h := &handlers{app: a, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolLogSet, Handler: h.logSet},
		server.ServerTool{Tool: toolGetSessions, Handler: h.getSessions},
		server.ServerTool{Tool: toolGetRepRecords, Handler: h.getRepRecords},
		server.ServerTool{Tool: toolEstimate1RM, Handler: h.estimate1RM},
		server.ServerTool{Tool: toolGetProjections, Handler: h.getProjections},
		server.ServerTool{Tool: toolGetMilestones, Handler: h.getMilestones},
		server.ServerTool{Tool: toolGetTrend, Handler: h.getTrend},
		server.ServerTool{Tool: toolGetBodyWeight, Handler: h.getBodyWeight},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resSummary, Handler: h.summary},
		server.ServerResource{Resource: resRecentSessions, Handler: h.recentSessions},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	app *app.App
	log *slog.Logger
}

// --- Resource definitions ---

var resSummary = mcp.NewResource(
	"buff://summary",
	"Training Summary",
	mcp.WithResourceDescription("Collection counts, exercise catalog, and latest body weight"),
	mcp.WithMIMEType("application/json"),
)

var resRecentSessions = mcp.NewResource(
	"buff://recent_sessions",
	"Recent Sessions",
	mcp.WithResourceDescription("The 20 most recent workout sessions"),
	mcp.WithMIMEType("application/json"),
)

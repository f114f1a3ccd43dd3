package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) summary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	summary := map[string]any{
		"stats":     h.app.Stats(),
		"exercises": h.app.Exercises(),
		"unit":      h.app.Unit(),
	}
	if bw := h.app.BodyWeight(); len(bw) > 0 {
		summary["latestBodyWeight"] = bw[len(bw)-1]
	}
	return jsonResource(req, summary)
}

func (h *handlers) recentSessions(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	sessions := h.app.Sessions()
	if len(sessions) > 20 {
		sessions = sessions[:20]
	}
	return jsonResource(req, sessions)
}

func jsonResource(req mcp.ReadResourceRequest, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/calm/pkg/content"
	"tableflip.dev/calm/pkg/glyph"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerPatternsResource(srv, svc)
	registerEntriesResource(srv, svc)
	registerAffirmationsResource(srv)
}

func registerPatternsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"calm://patterns",
		"Exercises",
		mcp.WithResourceDescription("Guided breathing, grounding, relaxation and visualization exercises."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		list := svc.ListPatterns(ctx)
		payload := map[string]any{
			"patterns": list,
			"count":    len(list),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerEntriesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"calm://journal/entries",
		"Journal Entries",
		mcp.WithResourceDescription("Every committed journal entry, newest first."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		entries, err := svc.Entries(ctx, glyph.NoMood, 0)
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"entries": entries,
			"count":   len(entries),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerAffirmationsResource(srv *server.MCPServer) {
	resource := mcp.NewResource(
		"calm://affirmations",
		"Affirmations",
		mcp.WithResourceDescription("The full affirmation deck in order."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"affirmations": content.Affirmations(),
		})
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

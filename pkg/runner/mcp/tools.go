package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListPatternsTool(srv, svc)
	registerJournalEntriesTool(srv, svc)
	registerJournalCommitTool(srv, svc)
	registerNextAffirmationTool(srv, svc)
}

func registerListPatternsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_patterns",
		mcp.WithDescription("List the guided exercises with their phases and durations."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list := svc.ListPatterns(ctx)
		return toJSONResult(map[string]any{
			"patterns": list,
			"count":    len(list),
		})
	})
}

func registerJournalEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"journal_entries",
		mcp.WithDescription("List committed journal entries, newest first."),
		mcp.WithString("mood",
			mcp.Description("Only entries tagged with this mood."),
			mcp.Enum("happy", "sad", "angry", "calm", "anxious"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Mood  string  `json:"mood"`
			Limit float64 `json:"limit"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		mood, err := ParseMood(args.Mood)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		entries, err := svc.Entries(ctx, mood, int(args.Limit))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"entries": entries,
			"count":   len(entries),
		})
	})
}

func registerJournalCommitTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"journal_commit",
		mcp.WithDescription("Add an entry to the journal with the current time."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Entry text."),
		),
		mcp.WithString("mood",
			mcp.Description("Optional mood tag."),
			mcp.Enum("happy", "sad", "angry", "calm", "anxious"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		mood, err := ParseMood(request.GetString("mood", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.Commit(ctx, text, mood)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerNextAffirmationTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"next_affirmation",
		mcp.WithDescription("Return the next affirmation from the deck and advance it."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := svc.NextAffirmation(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/use-agent/cookly/config"
	"github.com/use-agent/cookly/extractor"
	"github.com/use-agent/cookly/models"
	"github.com/use-agent/cookly/share"
)

func handleExtractRecipe(x *extractor.Extractor) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError("url is required"), nil
		}
		format := request.GetString("format", share.FormatJSON)

		res := x.Extract(ctx, url)
		if !res.OK() {
			return mcp.NewToolResultError(fmt.Sprintf("extraction failed for %s: %s", res.Err.SourceURL, res.Err.Error)), nil
		}

		out, err := share.Render(res.Recipe, format, "")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

func handleBatchExtract(x *extractor.Extractor, cfg config.BatchConfig) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		urls, err := request.RequireStringSlice("urls")
		if err != nil || len(urls) == 0 {
			return mcp.NewToolResultError("urls is required and must be a non-empty array of strings"), nil
		}
		if cfg.MaxURLs > 0 && len(urls) > cfg.MaxURLs {
			return mcp.NewToolResultError(fmt.Sprintf("maximum %d URLs per batch", cfg.MaxURLs)), nil
		}

		resp := extractor.Summarize(x.ExtractBatch(ctx, urls, cfg.Concurrency))
		b, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode results: %v", err)), nil
		}
		return mcp.NewToolResultText(string(b)), nil
	}
}

func handleShareRecipe(cfg config.ShareConfig) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := request.RequireString("recipe_json")
		if err != nil {
			return mcp.NewToolResultError("recipe_json is required"), nil
		}
		format := request.GetString("format", share.FormatURL)
		base := request.GetString("base_url", cfg.BaseURL)

		var rec models.Recipe
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("recipe_json is not a recipe record: %v", err)), nil
		}

		out, err := share.Render(&rec, format, base)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

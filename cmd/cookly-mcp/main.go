package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/use-agent/cookly/config"
	"github.com/use-agent/cookly/engine"
	"github.com/use-agent/cookly/extractor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// stdout carries the MCP protocol, so logs go to stderr.
	logger := cfg.Log.NewLogger(os.Stderr)
	x := extractor.New(engine.NewHTTPEngine(cfg.Fetch), extractor.WithLogger(logger))

	s := server.NewMCPServer(
		"cookly",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	s.AddTool(mcp.NewTool("extract_recipe",
		mcp.WithDescription("Extract a recipe (title, ingredients, instructions, times, servings, image, author) from a recipe web page or a Cookly share link."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The recipe page URL, or a Cookly URL carrying an import parameter"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'json' (default, the full record), 'text' (share message) or 'markdown' (recipe card)"),
			mcp.Enum("json", "text", "markdown"),
		),
	), handleExtractRecipe(x))

	s.AddTool(mcp.NewTool("batch_extract_recipes",
		mcp.WithDescription("Extract recipes from several URLs in parallel. Returns a JSON summary with one result per URL."),
		mcp.WithArray("urls",
			mcp.Required(),
			mcp.Description("List of recipe page URLs"),
		),
	), handleBatchExtract(x, cfg.Batch))

	s.AddTool(mcp.NewTool("share_recipe",
		mcp.WithDescription("Render a recipe JSON record as a Cookly import link, share text, Markdown or HTML card."),
		mcp.WithString("recipe_json",
			mcp.Required(),
			mcp.Description("The recipe record as returned by extract_recipe"),
		),
		mcp.WithString("format",
			mcp.Description("Output format: 'url' (default), 'text', 'markdown' or 'html'"),
			mcp.Enum("url", "text", "markdown", "html"),
		),
		mcp.WithString("base_url",
			mcp.Description("Base URL for the import link; defaults to the configured share base URL"),
		),
	), handleShareRecipe(cfg.Share))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

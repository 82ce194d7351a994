package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/use-agent/cookly/config"
	"github.com/use-agent/cookly/engine"
	"github.com/use-agent/cookly/extractor"
	"github.com/use-agent/cookly/models"
)

type pageEngine map[string]string

func (pageEngine) Name() string { return "pages" }

func (p pageEngine) Fetch(_ context.Context, req *engine.FetchRequest) (*engine.FetchResult, error) {
	body, ok := p[req.URL]
	if !ok {
		return nil, models.NewRecipeError(models.ErrCodeFetch, "404 Not Found for url: "+req.URL, nil)
	}
	return &engine.FetchResult{Body: []byte(body), ContentType: "text/html", StatusCode: 200}, nil
}

func testExtractor() *extractor.Extractor {
	pages := pageEngine{
		"https://food.example/dal": `<h1>Dal</h1><ul class="ingredients"><li>lentils</li><li>cumin</li></ul>`,
	}
	return extractor.New(pages, extractor.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func call(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := mcp.AsTextContent(res.Content[0])
	if !ok {
		t.Fatalf("content is %T, want text", res.Content[0])
	}
	return tc.Text
}

func TestExtractRecipeTool(t *testing.T) {
	h := handleExtractRecipe(testExtractor())

	res, err := h(context.Background(), call(map[string]any{"url": "https://food.example/dal"}))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	var rec models.Recipe
	if err := json.Unmarshal([]byte(resultText(t, res)), &rec); err != nil {
		t.Fatal(err)
	}
	if rec.Title != "Dal" || len(rec.Ingredients) != 2 {
		t.Errorf("recipe = %+v", rec)
	}

	res, _ = h(context.Background(), call(map[string]any{"url": "https://food.example/dal", "format": "text"}))
	if text := resultText(t, res); !strings.Contains(text, "1. lentils") {
		t.Errorf("text format = %q", text)
	}
}

func TestExtractRecipeTool_Errors(t *testing.T) {
	h := handleExtractRecipe(testExtractor())

	res, _ := h(context.Background(), call(map[string]any{}))
	if !res.IsError {
		t.Error("missing url should be a tool error")
	}
	res, _ = h(context.Background(), call(map[string]any{"url": "https://food.example/nope"}))
	if !res.IsError || !strings.Contains(resultText(t, res), "404") {
		t.Errorf("fetch failure should be a tool error mentioning 404")
	}
}

func TestBatchExtractTool(t *testing.T) {
	h := handleBatchExtract(testExtractor(), config.Default().Batch)
	res, err := h(context.Background(), call(map[string]any{
		"urls": []any{"https://food.example/dal", "https://food.example/nope"},
	}))
	if err != nil {
		t.Fatal(err)
	}
	var resp models.BatchResponse
	if err := json.Unmarshal([]byte(resultText(t, res)), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != 2 || resp.Succeeded != 1 || resp.Status != models.BatchPartial {
		t.Errorf("resp = %+v", resp)
	}
}

func TestShareRecipeTool(t *testing.T) {
	h := handleShareRecipe(config.ShareConfig{BaseURL: "https://cookly.example/"})
	recipe := `{"title":"Dal","ingredients":["lentils"],"instructions":["Simmer until soft and creamy."]}`

	res, _ := h(context.Background(), call(map[string]any{"recipe_json": recipe}))
	link := resultText(t, res)
	if !strings.HasPrefix(link, "https://cookly.example/?import=") {
		t.Fatalf("link = %q", link)
	}
	decoded := extractor.DecodeImport(link)
	if !decoded.OK() || decoded.Recipe.Title != "Dal" {
		t.Errorf("decoded = %+v", decoded)
	}

	res, _ = h(context.Background(), call(map[string]any{"recipe_json": recipe, "format": "markdown"}))
	if md := resultText(t, res); !strings.Contains(md, "# Dal") {
		t.Errorf("markdown = %q", md)
	}

	res, _ = h(context.Background(), call(map[string]any{"recipe_json": "[1,2]"}))
	if !res.IsError {
		t.Error("non-object recipe_json should be a tool error")
	}
}

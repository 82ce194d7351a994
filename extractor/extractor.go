// Package extractor turns a URL into a recipe record. Import URLs are decoded
// locally; anything else is fetched once and parsed, preferring JSON-LD
// Recipe metadata and falling back to markup heuristics.
package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/use-agent/cookly/engine"
	"github.com/use-agent/cookly/models"
)

// Extractor is safe for concurrent use. It holds no per-request state.
type Extractor struct {
	engine engine.Engine
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for extraction events.
func WithLogger(l *slog.Logger) Option {
	return func(x *Extractor) {
		if l != nil {
			x.logger = l
		}
	}
}

// New creates an Extractor that fetches pages through eng.
func New(eng engine.Engine, opts ...Option) *Extractor {
	x := &Extractor{
		engine: eng,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Extract produces exactly one recipe or extraction error for rawURL. It
// never panics; internal faults are reported as extraction errors.
func (x *Extractor) Extract(ctx context.Context, rawURL string) (result models.Result) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			x.logger.Error("extraction panicked", "url", rawURL, "panic", p)
			result = models.ErrorResult(rawURL, fmt.Sprint(p))
		}
	}()

	u, err := url.Parse(rawURL)
	if err != nil {
		x.logger.Warn("invalid url", "url", rawURL, "error", err)
		return models.ErrorResult(rawURL, err.Error())
	}

	if _, ok := importPayload(u); ok {
		result = DecodeImport(rawURL)
		if !result.OK() {
			x.logger.Error("failed to decode import data", "url", rawURL, "error", result.Err.Error)
		} else {
			x.logger.Info("decoded shared recipe", "title", result.Recipe.Title)
		}
		return result
	}

	rec, err := x.scrape(ctx, rawURL)
	if err != nil {
		x.logger.Error("extraction failed",
			"url", rawURL,
			"code", models.ErrorCode(err),
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return models.ErrorResult(rawURL, models.ErrorMessage(err))
	}

	rec.SourceURL = rawURL
	rec.SourceDomain = u.Hostname()
	x.logger.Info("extracted recipe",
		"url", rawURL,
		"extracted_with", rec.ExtractedWith,
		"ingredients", len(rec.Ingredients),
		"instructions", len(rec.Instructions),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return models.RecipeResult(rec)
}

// scrape fetches rawURL and runs the structured extractor, then the
// heuristic one when no Recipe metadata is present.
func (x *Extractor) scrape(ctx context.Context, rawURL string) (*models.Recipe, error) {
	res, err := x.engine.Fetch(ctx, &engine.FetchRequest{URL: rawURL})
	if err != nil {
		return nil, err
	}
	if res.ContentType != "" && !engine.IsHTMLContentType(res.ContentType) {
		x.logger.Warn("response is not declared as html, parsing anyway",
			"url", rawURL, "content_type", res.ContentType)
	}

	doc, err := ParseDocument(res.Body, res.ContentType)
	if err != nil {
		return nil, models.NewRecipeError(models.ErrCodeParse, "failed to parse page: "+err.Error(), err)
	}

	if rec, ok := ExtractStructured(doc, x.logger); ok {
		return rec, nil
	}
	x.logger.Debug("no json-ld recipe found, using heuristics", "url", rawURL)
	return ExtractHeuristic(doc), nil
}

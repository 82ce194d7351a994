package engine

import (
	"context"
)

// Engine is the interface that page fetchers implement.
type Engine interface {
	// Name returns the engine identifier (e.g. "http").
	Name() string

	// Fetch retrieves the page for the given request. Failures are
	// *models.RecipeError values with code FETCH_FAILED or FETCH_TIMEOUT.
	Fetch(ctx context.Context, req *FetchRequest) (*FetchResult, error)
}

// FetchRequest contains everything an engine needs to fetch a page.
type FetchRequest struct {
	URL     string
	Headers map[string]string
}

// FetchResult is the output of a successful engine fetch.
type FetchResult struct {
	// Body is the raw response body, capped at the configured size.
	Body []byte

	// ContentType is the declared Content-Type header.
	ContentType string

	StatusCode int
	FinalURL   string
	EngineName string
}

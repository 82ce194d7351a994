package models

// Batch status values.
const (
	BatchCompleted = "completed"
	BatchPartial   = "partial"
	BatchFailed    = "failed"
)

// BatchResponse is the response for POST /api/v1/extract/batch.
type BatchResponse struct {
	// ID identifies the batch in logs and webhook events.
	ID string `json:"id,omitempty"`

	// Status is "completed", "partial" or "failed".
	Status    string   `json:"status"`
	Total     int      `json:"total"`
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Results   []Result `json:"results"`
}

// APIError is the body of every non-extraction failure (bad input, auth).
// Extraction failures are reported as ExtractionError with status 200.
type APIError struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ShareResponse is the response for POST /api/v1/share.
type ShareResponse struct {
	// URL is a share link whose import parameter decodes back to the recipe.
	URL string `json:"url"`

	// Text is the plain-text share message.
	Text string `json:"text"`

	// Markdown is the recipe card rendered as Markdown.
	Markdown string `json:"markdown"`

	// HTML is the recipe card as an HTML fragment.
	HTML string `json:"html"`
}

// HealthResponse is the response for GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

package models

// ExtractRequest is the payload for POST /api/extract-recipe and
// POST /api/v1/extract.
type ExtractRequest struct {
	// URL is the recipe page, or a share URL carrying an import payload.
	URL string `json:"url"`
}

// BatchRequest is the payload for POST /api/v1/extract/batch.
type BatchRequest struct {
	// URLs is the list of recipe pages to extract. Required.
	URLs []string `json:"urls" binding:"required,min=1"`

	// WebhookURL, when set, also receives the finished batch as a
	// "batch.completed" event.
	WebhookURL string `json:"webhook_url,omitempty" binding:"omitempty,url"`

	// WebhookSecret signs the webhook body with HMAC-SHA256.
	WebhookSecret string `json:"webhook_secret,omitempty"`
}

// ShareRequest is the payload for POST /api/v1/share.
type ShareRequest struct {
	// Recipe is the record to share. Required.
	Recipe *Recipe `json:"recipe" binding:"required"`

	// BaseURL is the page the share link points at. Defaults to the
	// configured share base URL.
	BaseURL string `json:"base_url,omitempty" binding:"omitempty,url"`
}

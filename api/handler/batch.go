package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/use-agent/cookly/config"
	"github.com/use-agent/cookly/extractor"
	"github.com/use-agent/cookly/models"
	"github.com/use-agent/cookly/webhook"
)

// Batch returns a handler for POST /api/v1/extract/batch.
//
// Every URL is extracted independently, at most cfg.Concurrency at a time,
// and the handler answers once all of them are done. When webhook_url is
// set the same response is also delivered as a batch.completed event.
func Batch(x *extractor.Extractor, cfg config.BatchConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, models.ErrCodeInvalidInput, "invalid request body: "+err.Error())
			return
		}
		if cfg.MaxURLs > 0 && len(req.URLs) > cfg.MaxURLs {
			respondError(c, http.StatusBadRequest, models.ErrCodeInvalidInput,
				fmt.Sprintf("maximum %d URLs per batch", cfg.MaxURLs))
			return
		}

		jobID := "batch-" + uuid.NewString()
		results := x.ExtractBatch(c.Request.Context(), req.URLs, cfg.Concurrency)
		resp := extractor.Summarize(results)
		resp.ID = jobID

		slog.Info("batch job finished",
			"id", jobID,
			"status", resp.Status,
			"succeeded", resp.Succeeded,
			"failed", resp.Failed,
			"total", resp.Total,
		)

		if req.WebhookURL != "" {
			webhook.DeliverAsync(req.WebhookURL, req.WebhookSecret,
				webhook.NewEvent(webhook.EventBatchCompleted, jobID, resp))
		}

		c.JSON(http.StatusOK, resp)
	}
}

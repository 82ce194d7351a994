package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/cookly/api/middleware"
	"github.com/use-agent/cookly/extractor"
	"github.com/use-agent/cookly/models"
)

// Extract returns a handler for POST /api/extract-recipe and
// POST /api/v1/extract.
//
// The body is {"url": "..."}. A recipe or an extraction error is always
// answered with 200; only a missing URL or an unreadable body is a 400.
func Extract(x *extractor.Extractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ExtractRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, models.ErrCodeInvalidInput, "invalid request body: "+err.Error())
			return
		}
		if req.URL == "" {
			respondError(c, http.StatusBadRequest, models.ErrCodeInvalidInput, "No URL provided")
			return
		}

		start := time.Now()
		slog.Info("extracting recipe",
			"url", req.URL,
			"request_id", middleware.GetRequestID(c),
		)
		res := x.Extract(c.Request.Context(), req.URL)
		slog.Info("extraction finished",
			"url", req.URL,
			"ok", res.OK(),
			"request_id", middleware.GetRequestID(c),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)

		c.JSON(http.StatusOK, res)
	}
}

// respondError writes the error body shared by every non-extraction failure.
func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, models.APIError{Error: message, Code: code})
}

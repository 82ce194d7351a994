package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/cookly/config"
	"github.com/use-agent/cookly/models"
	"github.com/use-agent/cookly/share"
)

// Share returns a handler for POST /api/v1/share.
//
// It renders the posted recipe as an import link plus text, Markdown and
// HTML forms. base_url overrides the configured share base URL.
func Share(cfg config.ShareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ShareRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, models.ErrCodeInvalidInput, "invalid request body: "+err.Error())
			return
		}

		base := req.BaseURL
		if base == "" {
			base = cfg.BaseURL
		}

		link, err := share.ImportURL(base, req.Recipe)
		if err != nil {
			respondError(c, http.StatusBadRequest, models.ErrCodeInvalidInput, err.Error())
			return
		}
		card, err := share.HTML(req.Recipe)
		if err != nil {
			slog.Error("share card failed", "error", err)
			respondError(c, http.StatusInternalServerError, models.ErrCodeInternal, err.Error())
			return
		}
		md, err := share.Markdown(req.Recipe)
		if err != nil {
			slog.Error("share markdown failed", "error", err)
			respondError(c, http.StatusInternalServerError, models.ErrCodeInternal, err.Error())
			return
		}

		c.JSON(http.StatusOK, models.ShareResponse{
			URL:      link,
			Text:     share.Text(req.Recipe),
			Markdown: md,
			HTML:     card,
		})
	}
}

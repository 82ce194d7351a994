package share

import (
	"encoding/json"
	"fmt"

	"github.com/use-agent/cookly/models"
)

// Output formats accepted by Render.
const (
	FormatJSON     = "json"
	FormatURL      = "url"
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Render produces rec in the named format. base is only used by FormatURL.
func Render(rec *models.Recipe, format, base string) (string, error) {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return "", fmt.Errorf("share: encode recipe: %w", err)
		}
		return string(b), nil
	case FormatURL:
		return ImportURL(base, rec)
	case FormatText:
		return Text(rec), nil
	case FormatMarkdown:
		return Markdown(rec)
	case FormatHTML:
		return HTML(rec)
	}
	return "", fmt.Errorf("share: unknown format %q", format)
}

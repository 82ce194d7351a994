// Package share renders recipes for people and for other Cookly instances:
// import URLs that the extractor decodes back into the same record, a plain
// text message, an HTML card and its Markdown form.
package share

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/use-agent/cookly/extractor"
	"github.com/use-agent/cookly/models"
)

// ImportURL embeds rec in base as an unpadded URL-safe base64 import
// parameter. Existing query parameters of base are kept.
func ImportURL(base string, rec *models.Recipe) (string, error) {
	if rec == nil {
		return "", fmt.Errorf("share: nil recipe")
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("share: parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("share: base url %q must be absolute", base)
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("share: encode recipe: %w", err)
	}

	q := u.Query()
	q.Set(extractor.ImportParam, base64.RawURLEncoding.EncodeToString(payload))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

var (
	isoHours   = regexp.MustCompile(`(\d+)H`)
	isoMinutes = regexp.MustCompile(`(\d+)M`)
)

// FormatDuration renders ISO-8601 time tokens such as "PT1H30M" as
// "1h 30min". Anything else is returned unchanged.
func FormatDuration(s string) string {
	rest, ok := strings.CutPrefix(s, "PT")
	if !ok {
		return s
	}
	var parts []string
	if m := isoHours.FindStringSubmatch(rest); m != nil {
		parts = append(parts, m[1]+"h")
	}
	if m := isoMinutes.FindStringSubmatch(rest); m != nil {
		parts = append(parts, m[1]+"min")
	}
	return strings.Join(parts, " ")
}

// Text renders rec as a chat-friendly message.
func Text(rec *models.Recipe) string {
	var b strings.Builder

	title := rec.Title
	if title == "" {
		title = "Recipe"
	}
	b.WriteString("🍳 " + title + "\n")
	if rec.Author != "" {
		b.WriteString("By " + rec.Author + "\n")
	}
	b.WriteString("\n")

	if rec.PrepTime != "" || rec.CookTime != "" {
		b.WriteString("⏱️ Time: ")
		if rec.PrepTime != "" {
			b.WriteString("Prep " + FormatDuration(rec.PrepTime) + " ")
		}
		if rec.CookTime != "" {
			b.WriteString("Cook " + FormatDuration(rec.CookTime))
		}
		b.WriteString("\n")
	}
	if rec.Servings != "" {
		b.WriteString("🍽️ Serves: " + rec.Servings + "\n")
	}
	b.WriteString("\n")

	b.WriteString("📋 Ingredients:\n")
	writeNumbered(&b, rec.Ingredients)
	b.WriteString("\n")

	b.WriteString("👨‍🍳 Instructions:\n")
	writeNumbered(&b, rec.Instructions)

	if rec.SourceURL != "" {
		b.WriteString("\n🔗 Source: " + rec.SourceURL + "\n")
	}
	b.WriteString("\nCaptured with Cookly 🦾")
	return b.String()
}

func writeNumbered(b *strings.Builder, items []string) {
	for i, item := range items {
		b.WriteString(strconv.Itoa(i+1) + ". " + item + "\n")
	}
}

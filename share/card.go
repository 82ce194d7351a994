package share

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/use-agent/cookly/models"
)

var cardTemplate = template.Must(template.New("card").Funcs(template.FuncMap{
	"duration": FormatDuration,
}).Parse(`<article class="recipe-card">
<h1>{{or .Title "Recipe"}}</h1>
{{- if .Author}}
<p class="author">By {{.Author}}</p>
{{- end}}
{{- with .Image.URL}}
<p><img src="{{.}}" alt="{{$.Title}}"></p>
{{- end}}
{{- if .Description}}
<p class="description">{{.Description}}</p>
{{- end}}
{{- if or .PrepTime .CookTime .TotalTime .Servings}}
<table>
<thead><tr><th>Prep</th><th>Cook</th><th>Total</th><th>Serves</th></tr></thead>
<tbody><tr><td>{{duration .PrepTime}}</td><td>{{duration .CookTime}}</td><td>{{duration .TotalTime}}</td><td>{{.Servings}}</td></tr></tbody>
</table>
{{- end}}
<h2>Ingredients</h2>
<ul>
{{- range .Ingredients}}
<li>{{.}}</li>
{{- end}}
</ul>
<h2>Instructions</h2>
<ol>
{{- range .Instructions}}
<li>{{.}}</li>
{{- end}}
</ol>
{{- if .SourceURL}}
<p class="source">Source: <a href="{{.SourceURL}}">{{.SourceURL}}</a></p>
{{- end}}
</article>
`))

// newMarkdownConverter creates a reusable, goroutine-safe Converter for recipe
// cards. Cell padding is minimal so the times table stays compact.
func newMarkdownConverter() *converter.Converter {
	return converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(
				table.WithCellPaddingBehavior(table.CellPaddingBehaviorMinimal),
			),
		),
	)
}

var mdConverter = newMarkdownConverter()

// HTML renders rec as a self-contained HTML fragment. All recipe text is
// escaped.
func HTML(rec *models.Recipe) (string, error) {
	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, rec); err != nil {
		return "", fmt.Errorf("share: render card: %w", err)
	}
	return buf.String(), nil
}

// Markdown renders rec as Markdown by converting its HTML card. Relative
// image and link URLs are resolved against the recipe's source host.
func Markdown(rec *models.Recipe) (string, error) {
	card, err := HTML(rec)
	if err != nil {
		return "", err
	}
	md, err := mdConverter.ConvertString(card, converter.WithDomain(sourceOrigin(rec.SourceURL)))
	if err != nil {
		return "", fmt.Errorf("share: convert card to markdown: %w", err)
	}
	return md, nil
}

func sourceOrigin(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

package extractor

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/use-agent/cookly/models"
)

// minInstructionRunes drops short fragments ("Mix", "Step 1") that are
// usually labels rather than steps.
const minInstructionRunes = 10

// listStrategy finds a list of strings in a document: the first element
// matching container is taken, and the trimmed text of its descendants
// matching items is kept when accept allows it.
type listStrategy struct {
	container cascadia.Selector
	items     cascadia.Selector
	accept    func(string) bool
}

func newListStrategies(items string, accept func(string) bool, containers ...string) []listStrategy {
	itemSel := cascadia.MustCompile(items)
	out := make([]listStrategy, 0, len(containers))
	for _, c := range containers {
		out = append(out, listStrategy{
			container: cascadia.MustCompile(c),
			items:     itemSel,
			accept:    accept,
		})
	}
	return out
}

var (
	titleSel  = cascadia.MustCompile("h1")
	docTitle  = cascadia.MustCompile("title")
	imageSels = []cascadia.Selector{
		cascadia.MustCompile(`meta[property="og:image"]`),
		cascadia.MustCompile(`meta[name="twitter:image"]`),
	}

	ingredientStrategies = newListStrategies("li", nonEmpty,
		".ingredients",
		".recipe-ingredients",
		`[class*="ingredient"]`,
		"ul.ingredients",
		"ol.ingredients",
		".ingredient-list",
	)

	instructionStrategies = newListStrategies("li, p", longerThanLabel,
		".instructions",
		".recipe-instructions",
		".directions",
		`[class*="instruction"]`,
		`[class*="step"]`,
	)
)

func nonEmpty(s string) bool { return s != "" }

func longerThanLabel(s string) bool { return utf8.RuneCountInString(s) > minInstructionRunes }

// apply returns the accepted item texts of the first matching container.
func (s listStrategy) apply(doc *goquery.Document) []string {
	container := doc.FindMatcher(s.container).First()
	if container.Length() == 0 {
		return nil
	}
	var out []string
	container.FindMatcher(s.items).Each(func(_ int, item *goquery.Selection) {
		if text := strings.TrimSpace(item.Text()); s.accept(text) {
			out = append(out, text)
		}
	})
	return out
}

// firstNonEmpty tries strategies in order and returns the first non-empty
// list. A container that matches but yields nothing falls through to the
// next strategy.
func firstNonEmpty(doc *goquery.Document, strategies []listStrategy) []string {
	for _, s := range strategies {
		if items := s.apply(doc); len(items) > 0 {
			return items
		}
	}
	return []string{}
}

// ExtractHeuristic assembles a best-effort recipe from common page markup.
// Only title, image, ingredients and instructions are looked for; every
// other field stays empty.
func ExtractHeuristic(doc *goquery.Document) *models.Recipe {
	rec := models.NewRecipe()
	rec.ExtractedWith = models.ExtractedHeuristic

	if h1 := doc.FindMatcher(titleSel).First(); h1.Length() > 0 {
		rec.Title = strings.TrimSpace(h1.Text())
	} else if t := doc.FindMatcher(docTitle).First(); t.Length() > 0 {
		rec.Title = strings.TrimSpace(t.Text())
	}

	for _, sel := range imageSels {
		if meta := doc.FindMatcher(sel).First(); meta.Length() > 0 {
			rec.Image = models.ImageURL(meta.AttrOr("content", ""))
			break
		}
	}

	rec.Ingredients = firstNonEmpty(doc, ingredientStrategies)
	rec.Instructions = firstNonEmpty(doc, instructionStrategies)
	return rec
}

package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/use-agent/cookly/models"
)

const (
	linkedDataType = "application/ld+json"
	recipeType     = "Recipe"
)

var scriptSel = cascadia.MustCompile("script")

// Field paths into a schema.org Recipe object. A path that does not resolve
// (missing key, or an intermediate that is not an object) yields no value.
var (
	pathType         = mustPath(`$["@type"]`)
	pathName         = mustPath("$.name")
	pathDescription  = mustPath("$.description")
	pathIngredients  = mustPath("$.recipeIngredient")
	pathInstructions = mustPath("$.recipeInstructions")
	pathPrepTime     = mustPath("$.prepTime")
	pathCookTime     = mustPath("$.cookTime")
	pathTotalTime    = mustPath("$.totalTime")
	pathYield        = mustPath("$.recipeYield")
	pathImage        = mustPath("$.image")
	pathAuthorName   = mustPath("$.author.name")
	pathStepText     = mustPath("$.text")
)

func mustPath(expr string) gval.Evaluable {
	eval, err := jsonpath.New(expr)
	if err != nil {
		panic("extractor: bad json path " + expr + ": " + err.Error())
	}
	return eval
}

// lookup evaluates path against v.
func lookup(path gval.Evaluable, v any) (any, bool) {
	out, err := path(context.Background(), v)
	if err != nil {
		return nil, false
	}
	return out, true
}

func lookupString(path gval.Evaluable, v any) string {
	out, _ := lookup(path, v)
	s, _ := out.(string)
	return s
}

// ExtractStructured looks for the first JSON-LD block in doc whose top-level
// object declares @type "Recipe" and maps it onto a recipe. Blocks that fail
// to parse are logged and skipped. It returns false when no block matches.
func ExtractStructured(doc *goquery.Document, logger *slog.Logger) (*models.Recipe, bool) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		rec   *models.Recipe
		found bool
	)
	doc.FindMatcher(scriptSel).EachWithBreak(func(i int, s *goquery.Selection) bool {
		if !isLinkedData(s.AttrOr("type", "")) {
			return true
		}
		data, err := decodeLinkedData(s.Text())
		if err != nil {
			logger.Debug("skipping unparseable json-ld block", "index", i, "error", err)
			return true
		}
		obj, ok := data.(map[string]any)
		if !ok || lookupString(pathType, obj) != recipeType {
			return true
		}
		rec, found = mapRecipe(obj), true
		return false
	})
	return rec, found
}

func isLinkedData(typ string) bool {
	mediaType, _, _ := strings.Cut(typ, ";")
	return strings.EqualFold(strings.TrimSpace(mediaType), linkedDataType)
}

// decodeLinkedData parses one complete JSON document, keeping numbers in
// their literal form.
func decodeLinkedData(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

func mapRecipe(obj map[string]any) *models.Recipe {
	rec := models.NewRecipe()
	rec.Title = lookupString(pathName, obj)
	rec.Description = lookupString(pathDescription, obj)
	rec.PrepTime = lookupString(pathPrepTime, obj)
	rec.CookTime = lookupString(pathCookTime, obj)
	rec.TotalTime = lookupString(pathTotalTime, obj)
	rec.Author = lookupString(pathAuthorName, obj)
	rec.ExtractedWith = models.ExtractedStructured

	if v, ok := lookup(pathYield, obj); ok {
		rec.Servings = models.StringValue(v)
	}
	if v, ok := lookup(pathImage, obj); ok {
		rec.Image = models.ImageFromValue(v)
	}
	if v, ok := lookup(pathIngredients, obj); ok {
		if items, isList := v.([]any); isList {
			for _, item := range items {
				rec.Ingredients = append(rec.Ingredients, models.StringValue(item))
			}
		}
	}
	if v, ok := lookup(pathInstructions, obj); ok {
		rec.Instructions = instructionSteps(v)
	}
	return rec
}

// instructionSteps flattens recipeInstructions. Object steps contribute their
// "text" (or "" without one), other entries their string form. A value that
// is not a list becomes a single step.
func instructionSteps(v any) []string {
	switch t := v.(type) {
	case nil:
		return []string{}
	case []any:
		steps := make([]string, 0, len(t))
		for _, item := range t {
			if step, isObj := item.(map[string]any); isObj {
				text, _ := lookup(pathStepText, step)
				steps = append(steps, models.StringValue(text))
				continue
			}
			steps = append(steps, models.StringValue(item))
		}
		return steps
	default:
		return []string{models.StringValue(t)}
	}
}

package models

import (
	"bytes"
	"encoding/json"
)

// Provenance records which extraction strategy produced a scraped recipe.
type Provenance string

const (
	// ExtractedStructured marks records read from JSON-LD Recipe metadata.
	ExtractedStructured Provenance = "structured"

	// ExtractedHeuristic marks records assembled from DOM selector heuristics.
	ExtractedHeuristic Provenance = "heuristic"
)

const (
	// SharedSourceDomain is the source_domain of records decoded from an
	// import payload instead of being fetched.
	SharedSourceDomain = "cookly-shared"

	// ImportedFromCookly is the imported_from value of import-payload records.
	ImportedFromCookly = "cookly"
)

// Recipe is the canonical extraction output. Every field is always present
// in its JSON form; absent data is an empty string or an empty list.
type Recipe struct {
	// Title is the recipe name.
	Title string `json:"title"`

	// Description is the free-form summary, when the source provides one.
	Description string `json:"description"`

	// Ingredients are the ingredient lines in source order.
	Ingredients []string `json:"ingredients"`

	// Instructions are the preparation steps in source order.
	Instructions []string `json:"instructions"`

	// PrepTime, CookTime and TotalTime are raw duration tokens as the source
	// wrote them (ISO-8601 like "PT15M", or free text).
	PrepTime  string `json:"prep_time"`
	CookTime  string `json:"cook_time"`
	TotalTime string `json:"total_time"`

	// Servings is the raw yield value.
	Servings string `json:"servings"`

	// Image is the main recipe image.
	Image Image `json:"image"`

	// Author is the author's display name.
	Author string `json:"author"`

	// ExtractedWith is set only for records scraped from a fetched page.
	ExtractedWith Provenance `json:"extracted_with,omitempty"`

	// SourceURL is the URL the extraction was requested for.
	SourceURL string `json:"source_url"`

	// SourceDomain is the host of SourceURL, or SharedSourceDomain for imports.
	SourceDomain string `json:"source_domain"`

	// ImportedFrom is set only for records decoded from an import payload.
	ImportedFrom string `json:"imported_from,omitempty"`

	// Extra carries keys of an imported payload that are not recipe fields
	// (for example a client-side id or category). They are emitted alongside
	// the known fields.
	Extra map[string]any `json:"-"`
}

// recipeKeys are the JSON names of the typed Recipe fields.
var recipeKeys = map[string]struct{}{
	"title": {}, "description": {}, "ingredients": {}, "instructions": {},
	"prep_time": {}, "cook_time": {}, "total_time": {}, "servings": {},
	"image": {}, "author": {}, "extracted_with": {}, "source_url": {},
	"source_domain": {}, "imported_from": {},
}

// NewRecipe returns an empty recipe with non-nil ingredient and instruction
// lists.
func NewRecipe() *Recipe {
	return &Recipe{
		Ingredients:  []string{},
		Instructions: []string{},
	}
}

// Normalize replaces nil lists with empty ones.
func (r *Recipe) Normalize() {
	if r.Ingredients == nil {
		r.Ingredients = []string{}
	}
	if r.Instructions == nil {
		r.Instructions = []string{}
	}
}

// recipeFields has Recipe's layout without its methods.
type recipeFields Recipe

// MarshalJSON writes the typed fields and then any Extra keys that do not
// collide with them.
func (r Recipe) MarshalJSON() ([]byte, error) {
	r.Normalize()
	b, err := json.Marshal(recipeFields(r))
	if err != nil || len(r.Extra) == 0 {
		return b, err
	}

	merged := make(map[string]json.RawMessage, len(recipeKeys)+len(r.Extra))
	if err := json.Unmarshal(b, &merged); err != nil {
		return nil, err
	}
	for k, v := range r.Extra {
		if _, known := merged[k]; known {
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		merged[k] = raw
	}
	return json.Marshal(merged)
}

// UnmarshalJSON decodes a recipe object leniently. Known keys are coerced to
// their field types (scalars to text, list elements through StringValue) and
// unknown keys are kept in Extra. Only non-object JSON is rejected.
func (r *Recipe) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var all map[string]any
	if err := dec.Decode(&all); err != nil {
		return err
	}
	if all == nil {
		return nil
	}

	rec := Recipe{}
	for key, v := range all {
		switch key {
		case "title":
			rec.Title = StringValue(v)
		case "description":
			rec.Description = StringValue(v)
		case "ingredients":
			rec.Ingredients = StringList(v)
		case "instructions":
			rec.Instructions = StringList(v)
		case "prep_time":
			rec.PrepTime = StringValue(v)
		case "cook_time":
			rec.CookTime = StringValue(v)
		case "total_time":
			rec.TotalTime = StringValue(v)
		case "servings":
			rec.Servings = StringValue(v)
		case "image":
			rec.Image = ImageFromValue(v)
		case "author":
			rec.Author = StringValue(v)
		case "extracted_with":
			rec.ExtractedWith = Provenance(StringValue(v))
		case "source_url":
			rec.SourceURL = StringValue(v)
		case "source_domain":
			rec.SourceDomain = StringValue(v)
		case "imported_from":
			rec.ImportedFrom = StringValue(v)
		default:
			if rec.Extra == nil {
				rec.Extra = make(map[string]any)
			}
			rec.Extra[key] = v
		}
	}

	*r = rec
	r.Normalize()
	return nil
}

// ExtractionError is the alternative extraction output, produced whenever a
// recipe could not be obtained.
type ExtractionError struct {
	Error     string `json:"error"`
	SourceURL string `json:"source_url"`
}

// Result is the outcome of one extraction request. Exactly one of Recipe and
// Err is set.
type Result struct {
	Recipe *Recipe
	Err    *ExtractionError
}

// RecipeResult wraps a successful extraction.
func RecipeResult(r *Recipe) Result {
	return Result{Recipe: r}
}

// ErrorResult wraps a failed extraction.
func ErrorResult(sourceURL, message string) Result {
	return Result{Err: &ExtractionError{Error: message, SourceURL: sourceURL}}
}

// OK reports whether the result carries a recipe.
func (r Result) OK() bool {
	return r.Recipe != nil
}

// SourceURL returns the source URL of whichever side is set.
func (r Result) SourceURL() string {
	if r.Recipe != nil {
		return r.Recipe.SourceURL
	}
	if r.Err != nil {
		return r.Err.SourceURL
	}
	return ""
}

// MarshalJSON emits the recipe or the error object, never both.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Recipe != nil {
		return json.Marshal(r.Recipe)
	}
	if r.Err != nil {
		return json.Marshal(r.Err)
	}
	return []byte("null"), nil
}

// UnmarshalJSON decodes an error object when it has an "error" key and a
// recipe otherwise.
func (r *Result) UnmarshalJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if _, isErr := probe["error"]; isErr {
		var e ExtractionError
		if err := json.Unmarshal(data, &e); err != nil {
			return err
		}
		*r = Result{Err: &e}
		return nil
	}
	var rec Recipe
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*r = Result{Recipe: &rec}
	return nil
}

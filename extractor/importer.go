package extractor

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/use-agent/cookly/models"
)

// ImportParam is the query parameter that carries a shared recipe payload.
const ImportParam = "import"

// importPayload returns the first non-empty import value of u.
func importPayload(u *url.URL) (string, bool) {
	for _, v := range u.Query()[ImportParam] {
		if v != "" {
			return v, true
		}
	}
	return "", false
}

// IsImportURL reports whether rawURL carries an import payload.
func IsImportURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	_, ok := importPayload(u)
	return ok
}

// DecodeImport decodes the recipe embedded in rawURL's import parameter.
// It never touches the network. Any decoding failure is returned as an
// ExtractionError carrying rawURL.
func DecodeImport(rawURL string) models.Result {
	u, err := url.Parse(rawURL)
	if err != nil {
		return models.ErrorResult(rawURL, "Invalid import URL: "+err.Error())
	}
	payload, ok := importPayload(u)
	if !ok {
		return models.ErrorResult(rawURL, "Invalid import URL: missing "+ImportParam+" parameter")
	}

	rec, err := decodePayload(payload)
	if err != nil {
		return models.ErrorResult(rawURL, "Invalid import URL: "+models.ErrorMessage(err))
	}

	rec.SourceURL = rawURL
	rec.SourceDomain = models.SharedSourceDomain
	rec.ImportedFrom = models.ImportedFromCookly
	rec.ExtractedWith = ""
	return models.RecipeResult(rec)
}

// decodePayload turns a base64 payload into a recipe. The URL-safe alphabet
// is expected and padding is optional. Payloads produced with the standard
// alphabet are accepted too; their '+' often arrives as a space after query
// decoding.
func decodePayload(payload string) (*models.Recipe, error) {
	s := strings.ReplaceAll(payload, " ", "+")
	if m := len(s) % 4; m != 0 {
		s += strings.Repeat("=", 4-m)
	}

	data, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		var stdErr error
		data, stdErr = base64.StdEncoding.DecodeString(s)
		if stdErr != nil {
			return nil, models.NewRecipeError(models.ErrCodeDecode, "invalid base64 payload: "+err.Error(), err)
		}
	}

	if !utf8.Valid(data) {
		return nil, models.NewRecipeError(models.ErrCodeDecode, "payload is not valid UTF-8", nil)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		if !json.Valid(trimmed) {
			return nil, models.NewRecipeError(models.ErrCodeDecode, "payload is not valid JSON", nil)
		}
		return nil, models.NewRecipeError(models.ErrCodeDecode, "payload is not a JSON object", nil)
	}

	rec := models.NewRecipe()
	if err := json.Unmarshal(trimmed, rec); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, models.NewRecipeError(models.ErrCodeDecode, "payload is not valid JSON: "+err.Error(), err)
		}
		return nil, models.NewRecipeError(models.ErrCodeDecode, fmt.Sprintf("payload does not describe a recipe: %v", err), err)
	}
	rec.Normalize()
	return rec, nil
}

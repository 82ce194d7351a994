package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/cookly/config"
	"github.com/use-agent/cookly/engine"
	"github.com/use-agent/cookly/extractor"
	"github.com/use-agent/cookly/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type staticEngine string

func (staticEngine) Name() string { return "static" }

func (s staticEngine) Fetch(_ context.Context, req *engine.FetchRequest) (*engine.FetchResult, error) {
	return &engine.FetchResult{Body: []byte(s), ContentType: "text/html", StatusCode: 200, FinalURL: req.URL}, nil
}

func serve(h gin.HandlerFunc, method, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.Handle(method, "/", h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, "/", strings.NewReader(body)))
	return w
}

func TestExtractHandler(t *testing.T) {
	x := extractor.New(staticEngine(`<h1>Flatbread</h1>`),
		extractor.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	h := Extract(x)

	w := serve(h, http.MethodPost, `{"url":"https://food.example/flatbread"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	var rec models.Recipe
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatal(err)
	}
	if rec.Title != "Flatbread" || rec.SourceDomain != "food.example" {
		t.Errorf("recipe = %+v", rec)
	}

	w = serve(h, http.MethodPost, `{"url":""}`)
	var apiErr models.APIError
	if err := json.Unmarshal(w.Body.Bytes(), &apiErr); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusBadRequest || apiErr.Error != "No URL provided" || apiErr.Code != models.ErrCodeInvalidInput {
		t.Errorf("empty url: status %d, body %s", w.Code, w.Body)
	}
}

func TestShareHandler_LooseRecipe(t *testing.T) {
	h := Share(config.ShareConfig{BaseURL: "https://cookly.example/"})
	w := serve(h, http.MethodPost, `{"recipe":{"title":"Dal","servings":4,"ingredients":["lentils"]}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	var resp models.ShareResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	res := extractor.DecodeImport(resp.URL)
	if !res.OK() || res.Recipe.Servings != "4" {
		t.Errorf("share link decoded to %+v", res)
	}
}

func TestHealthHandler(t *testing.T) {
	w := serve(Health(time.Now().Add(-time.Minute)), http.MethodGet, "")
	var resp models.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "healthy" || resp.Service != "recipe-extractor" || resp.Version != Version {
		t.Errorf("health = %+v", resp)
	}
	if resp.Uptime != "1m0s" {
		t.Errorf("uptime = %q", resp.Uptime)
	}
}

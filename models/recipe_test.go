package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRecipe_MarshalAlwaysHasFields(t *testing.T) {
	b, err := json.Marshal(Recipe{Title: "Tea"})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"title", "description", "ingredients", "instructions",
		"prep_time", "cook_time", "total_time", "servings", "image", "author",
		"source_url", "source_domain"} {
		if _, ok := m[k]; !ok {
			t.Errorf("missing key %q in %s", k, b)
		}
	}
	if _, ok := m["extracted_with"]; ok {
		t.Errorf("extracted_with should be omitted when unset: %s", b)
	}
	if list, ok := m["ingredients"].([]any); !ok || len(list) != 0 {
		t.Errorf("ingredients = %v, want empty list", m["ingredients"])
	}
}

func TestRecipe_ExtraKeys(t *testing.T) {
	in := `{"title":"Tea","id":1712345678901,"category":"drinks","ingredients":null}`
	var r Recipe
	if err := json.Unmarshal([]byte(in), &r); err != nil {
		t.Fatal(err)
	}
	if r.Title != "Tea" || r.Ingredients == nil {
		t.Errorf("recipe = %+v", r)
	}
	if len(r.Extra) != 2 || r.Extra["category"] != "drinks" {
		t.Errorf("extra = %v", r.Extra)
	}

	b, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	out := string(b)
	if !strings.Contains(out, `"id":1712345678901`) || !strings.Contains(out, `"category":"drinks"`) {
		t.Errorf("extra keys not emitted verbatim: %s", out)
	}
}

func TestRecipe_ExtraDoesNotOverrideFields(t *testing.T) {
	r := Recipe{Title: "Tea", Extra: map[string]any{"title": "Coffee"}}
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"title":"Tea"`) {
		t.Errorf("typed field lost: %s", b)
	}
}

func TestResult_JSON(t *testing.T) {
	b, err := json.Marshal(ErrorResult("https://x.example/", "boom"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"error":"boom","source_url":"https://x.example/"}` {
		t.Errorf("error result = %s", b)
	}

	var r Result
	if err := json.Unmarshal(b, &r); err != nil {
		t.Fatal(err)
	}
	if r.OK() || r.SourceURL() != "https://x.example/" {
		t.Errorf("decoded = %+v", r)
	}

	if err := json.Unmarshal([]byte(`{"title":"Tea","source_url":"https://y.example/"}`), &r); err != nil {
		t.Fatal(err)
	}
	if !r.OK() || r.Recipe.Title != "Tea" || r.SourceURL() != "https://y.example/" {
		t.Errorf("decoded = %+v", r)
	}
}

func TestImage(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		url     string
		opaque  bool
		marshal string
	}{
		{"string", `"https://img.example/a.jpg"`, "https://img.example/a.jpg", false, `"https://img.example/a.jpg"`},
		{"null", `null`, "", false, `""`},
		{"object", `{"width": 800, "url": "https://img.example/b.jpg"}`, "https://img.example/b.jpg", true, `{"url":"https://img.example/b.jpg","width":800}`},
		{"array of strings", `["https://img.example/c.jpg", "https://img.example/d.jpg"]`, "https://img.example/c.jpg", true, `["https://img.example/c.jpg","https://img.example/d.jpg"]`},
		{"empty array", `[]`, "", true, `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var img Image
			if err := json.Unmarshal([]byte(tt.in), &img); err != nil {
				t.Fatal(err)
			}
			if img.URL() != tt.url {
				t.Errorf("URL() = %q, want %q", img.URL(), tt.url)
			}
			if img.IsOpaque() != tt.opaque {
				t.Errorf("IsOpaque() = %v", img.IsOpaque())
			}
			b, err := json.Marshal(img)
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != tt.marshal {
				t.Errorf("marshal = %s, want %s", b, tt.marshal)
			}
		})
	}
}

func TestImageFromValue(t *testing.T) {
	if !ImageFromValue(nil).IsZero() {
		t.Error("nil should give the zero image")
	}
	if got := ImageFromValue("https://img.example/a.jpg"); got.URL() != "https://img.example/a.jpg" || got.IsOpaque() {
		t.Errorf("string image = %+v", got)
	}
	got := ImageFromValue(map[string]any{"url": "https://img.example/b.jpg"})
	if !got.IsOpaque() || got.URL() != "https://img.example/b.jpg" {
		t.Errorf("object image = %+v", got)
	}
}

func TestRecipe_LooseFieldTypes(t *testing.T) {
	in := `{"title":12,"servings":["4","4 servings"],"ingredients":"salt","instructions":[1,true,null],"image":null}`
	var r Recipe
	if err := json.Unmarshal([]byte(in), &r); err != nil {
		t.Fatal(err)
	}
	if r.Title != "12" || r.Servings != `["4","4 servings"]` {
		t.Errorf("recipe = %+v", r)
	}
	if len(r.Ingredients) != 1 || r.Ingredients[0] != "salt" {
		t.Errorf("ingredients = %q", r.Ingredients)
	}
	if strings.Join(r.Instructions, "|") != "1|true|" {
		t.Errorf("instructions = %q", r.Instructions)
	}
	if !r.Image.IsZero() || r.Extra != nil {
		t.Errorf("image = %+v, extra = %v", r.Image, r.Extra)
	}

	if err := json.Unmarshal([]byte(`[1,2]`), &r); err == nil {
		t.Error("a JSON array is not a recipe")
	}
}

func TestStringValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"plain", "plain"},
		{json.Number("4.50"), "4.50"},
		{2.5, "2.5"},
		{false, "false"},
		{[]any{"a", json.Number("1")}, `["a",1]`},
		{map[string]any{"b": 1, "a": "x"}, `{"a":"x","b":1}`},
	}
	for _, tt := range tests {
		if got := StringValue(tt.in); got != tt.want {
			t.Errorf("StringValue(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

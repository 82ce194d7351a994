package models

import (
	"bytes"
	"encoding/json"
)

// Image holds a recipe's image reference. Most sources give a plain URL
// string, but structured data in the wild also uses ImageObject values or
// arrays of either. Non-string values are kept as opaque JSON and emitted
// unchanged.
type Image struct {
	url string
	raw json.RawMessage // set only for non-string values
}

// ImageURL returns an Image holding a plain URL.
func ImageURL(u string) Image {
	return Image{url: u}
}

// IsZero reports whether no image is set.
func (i Image) IsZero() bool {
	return i.url == "" && len(i.raw) == 0
}

// IsOpaque reports whether the image came from a non-string JSON value.
func (i Image) IsOpaque() bool {
	return len(i.raw) > 0
}

// Raw returns the opaque JSON value, or nil for plain URL images.
func (i Image) Raw() json.RawMessage {
	return i.raw
}

// URL returns the best-effort image URL. For opaque values it looks one level
// deep: an object's "url" string, or the first element of an array that is a
// string or an object with a "url" string.
func (i Image) URL() string {
	if len(i.raw) == 0 {
		return i.url
	}
	var v any
	if err := json.Unmarshal(i.raw, &v); err != nil {
		return ""
	}
	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return ""
		}
		v = arr[0]
	}
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if s, ok := t["url"].(string); ok {
			return s
		}
	}
	return ""
}

// MarshalJSON emits the URL as a JSON string, or the opaque value as given.
func (i Image) MarshalJSON() ([]byte, error) {
	if len(i.raw) > 0 {
		return i.raw, nil
	}
	return json.Marshal(i.url)
}

// UnmarshalJSON accepts any JSON value. Strings become plain URLs, null
// becomes the zero Image, everything else is stored in canonical form so a
// marshal/unmarshal round trip is stable.
func (i *Image) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*i = Image{}
		return nil
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*i = Image{url: s}
		return nil
	}

	raw, err := canonicalJSON(trimmed)
	if err != nil {
		return err
	}
	*i = Image{raw: raw}
	return nil
}

// ImageFromValue builds an Image from an already decoded JSON value.
func ImageFromValue(v any) Image {
	switch t := v.(type) {
	case nil:
		return Image{}
	case string:
		return Image{url: t}
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return Image{}
	}
	return Image{raw: raw}
}

// canonicalJSON re-encodes a JSON value so that repeated encoding is a no-op
// (sorted keys, HTML-escaped strings, numbers kept verbatim).
func canonicalJSON(data []byte) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

package llm

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
)

const snippetLimit = 200

// Normalize extracts the JSON payload from raw vendor text. Vendors wrap
// output in code fences or prose even when asked for JSON only, so the text
// is trimmed, unfenced, and cut to the outermost {...} span. Nothing else is
// repaired.
func Normalize(raw string) string {
	t := strings.TrimSpace(raw)
	if strings.HasPrefix(t, "```") {
		t = strings.TrimPrefix(t, "```")
		// drop the language hint, e.g. json
		if idx := strings.IndexByte(t, '\n'); idx != -1 {
			t = t[idx+1:]
		} else {
			t = strings.TrimLeftFunc(t, isLangTagRune)
		}
		// only a trailing fence closes the block; ``` may appear inside strings
		t = strings.TrimSpace(t)
		t = strings.TrimSpace(strings.TrimSuffix(t, "```"))
	}
	start := strings.Index(t, "{")
	end := strings.LastIndex(t, "}")
	if start != -1 && end > start {
		t = t[start : end+1]
	}
	return t
}

// Parse strictly decodes a single JSON object.
func Parse(clean string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(clean))
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, &ParseError{Snippet: snippet(clean), Err: err}
	}
	if obj == nil {
		return nil, &ParseError{Snippet: snippet(clean), Err: errors.New("not a JSON object")}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ParseError{Snippet: snippet(clean), Err: errors.New("trailing data after JSON object")}
	}
	return obj, nil
}

// DecodeObject is Parse(Normalize(raw)).
func DecodeObject(raw string) (map[string]any, error) {
	return Parse(Normalize(raw))
}

// decodeFor runs DecodeObject and tags a failure with the provider name.
func decodeFor(provider, raw string) (map[string]any, error) {
	obj, err := DecodeObject(raw)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Provider = provider
		}
		return nil, err
	}
	return obj, nil
}

func isLangTagRune(r rune) bool {
	return !strings.ContainsRune("{[ \t", r)
}

func snippet(s string) string {
	r := []rune(s)
	if len(r) <= snippetLimit {
		return s
	}
	return string(r[:snippetLimit]) + "…"
}

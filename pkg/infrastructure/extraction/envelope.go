// Package extraction decodes the payloads produced by the upstream document
// extraction service into ExtractedDocument values.
package extraction

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vsinha/tradeops/pkg/domain/entities"
)

// DefaultConfidence is assumed when the extractor reports none
const DefaultConfidence = 0.8

// ErrInvalidPayload is returned when a payload holds no JSON object
var ErrInvalidPayload = errors.New("invalid extraction payload")

// fieldWrappers are the envelope keys that may hold the extracted fields
var fieldWrappers = []string{"fields", "data", "parsed_data"}

// Decode reads an extraction payload. The payload may be the bare field
// object or an envelope carrying it under fields, data or parsed_data, and may
// be wrapped in a markdown code fence. A non-empty category wins; otherwise a
// top-level "category" in the payload names the document.
func Decode(payload []byte, category string) (entities.ExtractedDocument, error) {
	raw, ok := unwrapFence(payload)
	if !ok {
		return entities.ExtractedDocument{}, fmt.Errorf("%w: no JSON object found", ErrInvalidPayload)
	}
	root := gjson.ParseBytes(raw)

	fields := root
	for _, key := range fieldWrappers {
		if v := root.Get(key); v.IsObject() {
			fields = v
			break
		}
	}

	name := strings.TrimSpace(category)
	if v := root.Get("category"); name == "" && v.Type == gjson.String {
		name = strings.TrimSpace(v.Str)
	}
	parsed, _ := entities.ParseDocumentCategory(name)

	return entities.ExtractedDocument{
		Category:    parsed,
		RawCategory: name,
		Fields:      json.RawMessage(fields.Raw),
		Confidence:  confidence(root, fields),
	}, nil
}

// LoadFile reads and decodes a payload stored on disk
func LoadFile(path, category string) (entities.ExtractedDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.ExtractedDocument{}, fmt.Errorf("failed to read extraction payload %s: %w", path, err)
	}
	doc, err := Decode(data, category)
	if err != nil {
		return entities.ExtractedDocument{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// unwrapFence returns the JSON object held by the payload, looking inside
// ```json or bare ``` fences when the payload itself is not an object.
func unwrapFence(payload []byte) ([]byte, bool) {
	text := strings.TrimSpace(string(payload))
	if isObject(text) {
		return []byte(text), true
	}

	for _, open := range []string{"```json", "```"} {
		start := strings.Index(text, open)
		if start < 0 {
			continue
		}
		rest := text[start+len(open):]
		end := strings.Index(rest, "```")
		if end < 0 {
			end = len(rest)
		}
		if inner := strings.TrimSpace(rest[:end]); isObject(inner) {
			return []byte(inner), true
		}
	}
	return nil, false
}

func isObject(s string) bool {
	return gjson.Valid(s) && gjson.Parse(s).IsObject()
}

// confidence clamps the reported score into 0..1
func confidence(root, fields gjson.Result) float64 {
	v := root.Get("confidence")
	if v.Type != gjson.Number {
		v = fields.Get("confidence")
	}
	if v.Type != gjson.Number {
		return DefaultConfidence
	}
	switch c := v.Float(); {
	case c < 0:
		return 0
	case c > 1:
		return 1
	default:
		return c
	}
}

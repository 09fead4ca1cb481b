package completion

import (
	"encoding/json"
	"strings"
)

// Messages used when a provider reply cannot be decoded.
const (
	ErrNoJSONStructure   = "no JSON structure found"
	ErrInvalidJSONFormat = "invalid JSON format"
)

// ExtractStructuredResult decodes the text between the first '{' and the last '}'
// of raw as a JSON object. When that fails it returns a payload carrying the raw
// text, parsed=false and the reason. The decoded object is returned as-is.
func ExtractStructuredResult(raw string) map[string]any {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 {
		return unparsed(raw, ErrNoJSONStructure)
	}
	if end < start {
		return unparsed(raw, ErrInvalidJSONFormat)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &result); err != nil || result == nil {
		return unparsed(raw, ErrInvalidJSONFormat)
	}
	return result
}

func unparsed(raw, reason string) map[string]any {
	return map[string]any{
		"raw_response": raw,
		"parsed":       false,
		"error":        reason,
	}
}

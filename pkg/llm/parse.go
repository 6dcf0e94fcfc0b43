package llm

import (
	"encoding/json"
	"strings"
)

// cleanResponse strips Markdown code fences that models wrap around JSON.
func cleanResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// extractJSON returns the first balanced {...} or [...] substring, or "".
// Models sometimes wrap the payload in prose; this recovers it.
func extractJSON(content string) string {
	start := strings.IndexAny(content, "{[")
	if start < 0 {
		return ""
	}

	open := content[start]
	var close byte = '}'
	if open == '[' {
		close = ']'
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(content); i++ {
		c := content[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return content[start : i+1]
			}
		}
	}
	return ""
}

// decodeJSON parses model output into v, best effort: fences are stripped,
// then a direct parse is tried, then a balanced-substring extraction. It
// reports false instead of returning an error; a failed parse must never
// escape the gateway.
func decodeJSON(content string, v any) bool {
	clean := cleanResponse(content)
	if clean == "" {
		return false
	}

	if err := json.Unmarshal([]byte(clean), v); err == nil {
		return true
	}

	candidate := extractJSON(clean)
	if candidate == "" {
		return false
	}

	return json.Unmarshal([]byte(candidate), v) == nil
}

package sanitize

import "strings"

// ExtractJSONObject returns the first top-level brace-delimited JSON object
// substring in s, tolerating surrounding prose and markdown code fences. The
// scan tracks string literals and escapes, so braces inside string values do
// not end the object early.
//
// Failure modes: no opening brace, or an object that never closes (truncated
// model output) — both return ok=false.
func ExtractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

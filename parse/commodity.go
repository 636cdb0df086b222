package parse

import "strings"

// extractCommodityBraces splits a trailing, unescaped "{name}" suffix off
// s. Braces and brackets inside name are escaped with a backslash; the
// unescaped form is returned. ok is false if s does not end in
// a balanced, unescaped brace group.
func extractCommodityBraces(s string) (base, name string, ok bool) {
	if len(s) == 0 || s[len(s)-1] != '}' {
		return s, "", false
	}
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '}' && (i == 0 || s[i-1] != '\\') {
			depth++
		} else if s[i] == '{' && (i == 0 || s[i-1] != '\\') {
			depth--
			if depth == 0 {
				raw := s[i+1 : len(s)-1]
				return s[:i], unescapeCommodityName(raw), true
			}
		}
	}
	return s, "", false
}

func unescapeCommodityName(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// findTopLevelOf finds a top-level " of " token in s (phase 15's
// "<unit> of <commodity>" form). It must run before spaces are stripped
// from the cleaned string, since the surrounding spaces are what
// distinguish the "of"-operator from "of" appearing inside an ordinary
// word. Returns the byte range of the separator itself (the spaces
// included), so the caller can trim the two sides.
func findTopLevelOf(s string) (start, end int, ok bool) {
	const sep = " of "
	depth := 0
	for i := 0; i+len(sep) <= len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		}
		if depth == 0 && s[i:i+len(sep)] == sep {
			return i, i + len(sep), true
		}
	}
	return 0, 0, false
}

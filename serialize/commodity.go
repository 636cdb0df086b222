package serialize

import "strings"

// escapeCommodityName backslash-escapes brace and bracket characters so a
// commodity name can be embedded in a "{name}" suffix without closing it
// early, the serializer-side counterpart of parse's brace un-escaping.
func escapeCommodityName(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '{', '}', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(name[i])
	}
	return b.String()
}

// attachCommodity appends the commodity suffix to body per the closing
// paragraph: a non-inverse commodity is a trailing "{name}" (inserted
// just before a trailing "/denominator" or "^exponent" if one is
// present, so "kg{gold}/s" rather than "kg/s{gold}"), an inverse
// commodity is a leading "1/" with no brace suffix at all, since the
// commodity itself already reads as "not this substance."
func (s *Serializer) attachCommodity(body string, name string, inverse bool) string {
	if name == "" {
		return body
	}
	if inverse {
		return "1/" + body
	}
	escaped := escapeCommodityName(name)
	if idx := strings.LastIndexAny(body, "/^"); idx >= 0 {
		return body[:idx] + "{" + escaped + "}" + body[idx:]
	}
	return body + "{" + escaped + "}"
}

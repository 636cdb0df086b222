package parse

import "strings"

// localityTags are the phase 12 locale/qualifier tokens that
// disambiguate an otherwise-identical unit name (US vs imperial gallon,
// troy vs avoirdupois ounce, ...). They are recognized as a leading or
// trailing substring (no word boundary is checked) and stripped before the
// remainder is retried;
// the tag itself does not change which dictionary entry resolves beyond
// what the surrounding table already encodes, matching this
// implementation's representative (not locale-branching) dictionary.
var localityTags = []string{
	"US", "UK", "br", "troy", "av", "apothecaries", "IT", "th",
	"Chinese", "Japanese", "Canadian",
}

// stripLocality removes a recognized locality tag from the front or back
// of s, and any bracketed temperature-point marker like "[20]", returning
// the stripped string and whether anything was removed.
func stripLocality(s string) (string, bool) {
	if i := strings.IndexByte(s, '['); i >= 0 {
		if j := strings.IndexByte(s[i:], ']'); j >= 0 {
			return s[:i] + s[i+j+1:], true
		}
	}
	for _, tag := range localityTags {
		if strings.HasPrefix(s, tag) && len(s) > len(tag) {
			return s[len(tag):], true
		}
		if strings.HasSuffix(s, tag) && len(s) > len(tag) {
			return s[:len(s)-len(tag)], true
		}
	}
	return s, false
}

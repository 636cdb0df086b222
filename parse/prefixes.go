package parse

// siSymbolPrefixes is the one- and two-character SI
// prefix table, checked longest-match-first so "da" (deka) is tried
// before "d" (deci).
var siSymbolPrefixes = []struct {
	symbol string
	factor float64
}{
	{"da", 1e1},
	{"Qi", 1267650600228229401496703205376}, // 2^100, qubi
	{"Ri", 1237940039285380274899124224},     // 2^90, robi
	{"Yi", 1208925819614629174706176},         // 2^80, yobi
	{"Zi", 1180591620717411303424},             // 2^70, zebi
	{"Ei", 1152921504606846976},                 // 2^60, exbi
	{"Pi", 1125899906842624},                    // 2^50, pebi
	{"Ti", 1099511627776},                        // 2^40, tebi
	{"Gi", 1073741824},                             // 2^30, gibi
	{"Mi", 1048576},                                 // 2^20, mebi
	{"Ki", 1024},                                     // 2^10, kibi
	{"Q", 1e30}, {"R", 1e27}, {"Y", 1e24}, {"Z", 1e21}, {"E", 1e18},
	{"P", 1e15}, {"T", 1e12}, {"G", 1e9}, {"M", 1e6}, {"k", 1e3}, {"h", 1e2},
	{"d", 1e-1}, {"c", 1e-2}, {"m", 1e-3}, {"u", 1e-6}, {"n", 1e-9},
	{"p", 1e-12}, {"f", 1e-15}, {"a", 1e-18}, {"z", 1e-21}, {"y", 1e-24},
	{"r", 1e-27}, {"q", 1e-30},
}

// siWordPrefixes is phase 10's spelled-out prefix table, including
// the speculative "hella" (1e27, occasionally proposed as ronna's
// unofficial predecessor) and the kibi..qubi binary-prefix words.
var siWordPrefixes = []struct {
	word   string
	factor float64
}{
	{"quetta", 1e30}, {"ronna", 1e27}, {"yotta", 1e24}, {"zetta", 1e21},
	{"exa", 1e18}, {"peta", 1e15}, {"tera", 1e12}, {"giga", 1e9},
	{"mega", 1e6}, {"kilo", 1e3}, {"hecto", 1e2}, {"deka", 1e1}, {"deca", 1e1},
	{"deci", 1e-1}, {"centi", 1e-2}, {"milli", 1e-3}, {"micro", 1e-6},
	{"nano", 1e-9}, {"pico", 1e-12}, {"femto", 1e-15}, {"atto", 1e-18},
	{"zepto", 1e-21}, {"yocto", 1e-24}, {"ronto", 1e-27}, {"quecto", 1e-30},
	{"hella", 1e27},
	{"kibi", 1024}, {"mebi", 1048576}, {"gibi", 1073741824},
	{"tebi", 1099511627776}, {"pebi", 1125899906842624},
	{"exbi", 1152921504606846976}, {"zebi", 1180591620717411303424},
	{"yobi", 1208925819614629174706176}, {"robi", 1237940039285380274899124224},
	{"qubi", 1267650600228229401496703205376},
}

// siPrefix attempts to strip a recognized SI symbol prefix from the
// front of s, longest match first, requiring that what remains (at
// least one character) itself be non-empty — a bare prefix with nothing
// following it is not a valid strip.
func siPrefix(s string) (factor float64, rest string, ok bool) {
	for _, p := range siSymbolPrefixes {
		if len(s) > len(p.symbol) && s[:len(p.symbol)] == p.symbol {
			return p.factor, s[len(p.symbol):], true
		}
	}
	return 0, "", false
}

// siWordPrefix attempts to strip a recognized spelled-out SI prefix word
// from the front of s.
func siWordPrefix(s string) (factor float64, rest string, ok bool) {
	for _, p := range siWordPrefixes {
		if len(s) > len(p.word) && s[:len(p.word)] == p.word {
			return p.factor, s[len(p.word):], true
		}
	}
	return 0, "", false
}

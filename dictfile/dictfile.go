// Package dictfile implements the user-defined-units file loader: a
// line-oriented plain-text format feeding dictionary.Dictionary's overlay.
// It follows parse's own "never abort, collect diagnostics" posture: a single malformed
// line in a units file should not discard every other line in it.
package dictfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vantara-labs/units/dictionary"
	"github.com/vantara-labs/units/matchflags"
	"github.com/vantara-labs/units/measurement"
	"github.com/vantara-labs/units/numeric"
	"github.com/vantara-labs/units/parse"
	"github.com/vantara-labs/units/unit"
)

// Result collects the outcome of loading a units file: how many entries
// were registered, and a diagnostic string per line that could not be
// parsed.
type Result struct {
	Loaded      int
	Diagnostics []string
}

// operatorDirection maps the four assignment operators onto
// dictionary.Direction: "=" and "==" are both the plain
// bidirectional form (a bare "=" is the common case, "==" reads as
// "exactly equal, both ways" and is accepted as a synonym), "<=" feeds the
// name in as parseable input without ever being chosen as a rendering
// (the arrow points away from the name, into the table), and "=>" is the
// reverse: the name is never resolved as input but is available as a
// to_string candidate (the arrow points out of the table toward display).
var operatorDirection = map[string]dictionary.Direction{
	"==": dictionary.Bidirectional,
	"=":  dictionary.Bidirectional,
	"<=": dictionary.InputOnly,
	"=>": dictionary.OutputOnly,
}

// orderedOperators lists the operator tokens longest-first so "==" and
// "<="/"=>" are matched before the bare "=" prefix they contain.
var orderedOperators = []string{"==", "<=", "=>", "="}

// Load reads a user-defined-units file from r and registers each
// well-formed line into dict via p for measurement parsing. It never
// returns an error for malformed lines; those are reported in the
// returned Result's Diagnostics instead. Load only returns a non-nil
// error if r itself fails.
func Load(r io.Reader, p *parse.Parser, dict *dictionary.Dictionary) (Result, error) {
	var res Result
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := stripComment(scanner.Text())
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := loadLine(line, p, dict); err != nil {
			res.Diagnostics = append(res.Diagnostics, fmt.Sprintf("line %d: %s", lineNo, err))
			continue
		}
		res.Loaded++
	}
	if err := scanner.Err(); err != nil {
		return res, err
	}
	return res, nil
}

// stripComment removes a trailing "# ..." comment, respecting quoted
// names so a "#" inside a quoted name does not truncate the line early.
func stripComment(line string) string {
	quote := byte(0)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '#':
			return line[:i]
		}
	}
	return line
}

func loadLine(line string, p *parse.Parser, dict *dictionary.Dictionary) error {
	name, rest, err := consumeName(line)
	if err != nil {
		return err
	}
	op, rhs, ok := consumeOperator(rest)
	if !ok {
		return fmt.Errorf("expected one of =, ==, <=, => after name %q", name)
	}
	rhs = strings.TrimSpace(rhs)
	if rhs == "" {
		return fmt.Errorf("missing measurement for %q", name)
	}

	m, err := measurement.FromString(p, rhs, matchflags.Flags(0))
	if err != nil {
		return fmt.Errorf("measurement %q: %w", rhs, err)
	}

	scaled := unit.Precise{
		Dims:       m.Unit.Dims,
		Multiplier: numeric.Precise(m.Value) * m.Unit.Multiplier,
		Commodity:  m.Unit.Commodity,
	}

	dir := operatorDirection[op]
	if err := dict.AddUserDefinedUnit(name, scaled, dir); err != nil {
		return err
	}
	return nil
}

// consumeName reads a name off the front of line: a quoted run (with "
// or ') allowing embedded separators, or else the run up to the first
// operator token.
func consumeName(line string) (name, rest string, err error) {
	if len(line) == 0 {
		return "", "", fmt.Errorf("empty line")
	}
	if line[0] == '"' || line[0] == '\'' {
		quote := line[0]
		end := strings.IndexByte(line[1:], quote)
		if end < 0 {
			return "", "", fmt.Errorf("unterminated quoted name")
		}
		name = line[1 : 1+end]
		rest = line[1+end+1:]
		return name, rest, nil
	}

	idx := strings.IndexAny(line, "=<>")
	if idx < 0 {
		return "", "", fmt.Errorf("no assignment operator found")
	}
	name = strings.TrimSpace(line[:idx])
	if name == "" {
		return "", "", fmt.Errorf("empty name")
	}
	return name, line[idx:], nil
}

// consumeOperator matches the longest operator token at the front of
// (whitespace-trimmed) rest.
func consumeOperator(rest string) (op, tail string, ok bool) {
	rest = strings.TrimLeft(rest, " \t")
	for _, candidate := range orderedOperators {
		if strings.HasPrefix(rest, candidate) {
			return candidate, rest[len(candidate):], true
		}
	}
	return "", "", false
}

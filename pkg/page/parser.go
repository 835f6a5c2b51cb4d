package page

import (
	"strings"
	"unicode"
)

// Parse splits raw source text into a Page. It walks the input line by line
// (trailing whitespace trimmed) with a single line of lookahead and tags each
// top-level block by its leading keyword. Unrecognized lines become
// single-line Other blocks. The only failure mode is a ParseError for a
// declaration line missing its name token.
func Parse(text string) (Page, error) {
	sc := newScanner(text)
	var p Page

	for sc.more() {
		line := sc.next()
		switch {
		case strings.HasPrefix(line, "module "):
			m, err := parseModule(line, sc)
			if err != nil {
				return Page{}, err
			}
			p.Blocks = append(p.Blocks, ModuleDecl{Module: m})
		case strings.HasPrefix(line, "import "):
			m, err := parseModule(line, sc)
			if err != nil {
				return Page{}, err
			}
			p.Blocks = append(p.Blocks, ImportDecl{Module: m})
		case strings.HasPrefix(line, "init "):
			fn, err := parseFunction(line, sc)
			if err != nil {
				return Page{}, err
			}
			p.Blocks = append(p.Blocks, InitFn{Fn: fn})
		case strings.HasPrefix(line, "update "):
			fn, err := parseFunction(line, sc)
			if err != nil {
				return Page{}, err
			}
			p.Blocks = append(p.Blocks, UpdateFn{Fn: fn})
		case strings.HasPrefix(line, "view "):
			fn, err := parseFunction(line, sc)
			if err != nil {
				return Page{}, err
			}
			p.Blocks = append(p.Blocks, ViewFn{Fn: fn})
		case strings.HasPrefix(line, "subscriptions "):
			fn, err := parseFunction(line, sc)
			if err != nil {
				return Page{}, err
			}
			p.Blocks = append(p.Blocks, SubscriptionsFn{Fn: fn})
		case strings.HasPrefix(line, "page "):
			fn, err := parseFunction(line, sc)
			if err != nil {
				return Page{}, err
			}
			p.Blocks = append(p.Blocks, PageFn{Fn: fn})
		default:
			p.Blocks = append(p.Blocks, Other{Text: line})
		}
	}

	return p, nil
}

// scanner is a cursor over the trimmed input lines with one line of
// lookahead.
type scanner struct {
	lines []string
	pos   int
}

func newScanner(text string) *scanner {
	raw := strings.Split(text, "\n")
	// A trailing newline yields an empty final element; it is not a line.
	if n := len(raw); n > 0 && raw[n-1] == "" {
		raw = raw[:n-1]
	}
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimRightFunc(l, unicode.IsSpace)
	}
	return &scanner{lines: lines}
}

func (s *scanner) more() bool {
	return s.pos < len(s.lines)
}

func (s *scanner) next() string {
	line := s.lines[s.pos]
	s.pos++
	return line
}

func (s *scanner) peek() (string, bool) {
	if !s.more() {
		return "", false
	}
	return s.lines[s.pos], true
}

// parseModule reads a module/import declaration starting at line. The second
// whitespace-delimited token is the name. When the line mentions `exposing`,
// the interior of the first parenthesized group is captured; a list that does
// not close on the same line is assembled from subsequent lines until one
// ends with `)` or the input runs out.
func parseModule(line string, sc *scanner) (Module, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Module{}, &ParseError{Line: line}
	}
	name := fields[1]

	if !strings.Contains(line, "exposing") {
		return Module{Name: name}, nil
	}

	exposing := parenInterior(line)
	if !strings.HasSuffix(line, ")") {
		for sc.more() {
			next := sc.next()
			if i := strings.IndexByte(next, ')'); i >= 0 {
				exposing += next[:i]
			} else {
				exposing += next
			}
			if strings.HasSuffix(next, ")") {
				break
			}
		}
	}

	return Module{Name: name, Exposing: Expose(exposing)}, nil
}

// parenInterior returns the text between the first `(` and the first `)`
// after it. Missing parens degrade to the empty string or the rest of the
// line rather than erroring.
func parenInterior(line string) string {
	i := strings.IndexByte(line, '(')
	if i < 0 {
		return ""
	}
	rest := line[i+1:]
	if j := strings.IndexByte(rest, ')'); j >= 0 {
		return rest[:j]
	}
	return rest
}

// parseFunction reads one top-level definition starting at line. The first
// whitespace-delimited token names the function; following lines belong to
// the block while they are blank, indented, or restart with `<name> `
// (an additional pattern-match clause). The first line violating all three
// is left for the next scan iteration.
func parseFunction(line string, sc *scanner) (Function, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Function{}, &ParseError{Line: line}
	}
	name := fields[0]

	lines := []string{line}
	for {
		next, ok := sc.peek()
		if !ok {
			break
		}
		if strings.TrimSpace(next) != "" &&
			!strings.HasPrefix(next, " ") &&
			!strings.HasPrefix(next, "\t") &&
			!strings.HasPrefix(next, name+" ") {
			break
		}
		lines = append(lines, next)
		sc.pos++
	}

	return Function{Lines: lines}, nil
}

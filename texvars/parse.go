package texvars

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/kjk/py2tex/u"
)

const macroPrefix = `\newcommand{`

type Entry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ParseError is returned for a line that is not a macro definition
type ParseError struct {
	// 1-based
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid definition on line %d: '%s'", e.Line, e.Text)
}

// FormatLine returns a definition line, including the trailing newline
func FormatLine(name, value string) string {
	return macroPrefix + `\` + name + "}{" + value + "}\n"
}

// ParseLine parses a single \newcommand{\<name>}{<value>} line.
// The name is what follows the last backslash in the first {} group,
// the value is everything between the next { and the final }, so
// values can contain braces and backslashes: 5.23\times10^{10}.
func ParseLine(line string) (Entry, bool) {
	line = strings.TrimRight(line, "\r\n")
	rest, ok := strings.CutPrefix(line, macroPrefix)
	if !ok {
		return Entry{}, false
	}
	nameGroup, rest, ok := strings.Cut(rest, "}")
	if !ok {
		return Entry{}, false
	}
	idx := strings.LastIndex(nameGroup, `\`)
	if idx < 0 {
		return Entry{}, false
	}
	name := nameGroup[idx+1:]
	if name == "" {
		return Entry{}, false
	}
	if len(rest) < 2 || rest[0] != '{' || rest[len(rest)-1] != '}' {
		return Entry{}, false
	}
	return Entry{Name: name, Value: rest[1 : len(rest)-1]}, true
}

// Parse parses the content of a definitions file.
// Blank lines are skipped, any other line that is not a definition
// is a *ParseError. Entries are in file order, including duplicates.
func Parse(d []byte) ([]Entry, error) {
	d = u.NormalizeNewlines(d)
	scanner := bufio.NewScanner(bytes.NewReader(d))
	// values can be long
	scanner.Buffer(nil, 1024*1024)
	var res []Entry
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, ok := ParseLine(line)
		if !ok {
			return nil, &ParseError{Line: lineNo, Text: line}
		}
		res = append(res, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading definitions: %w", err)
	}
	return res, nil
}

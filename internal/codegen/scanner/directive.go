package scanner

import (
	"fmt"
	"go/ast"
	"regexp"
	"strconv"
	"strings"
)

// Directive is the parsed form of a record marker comment:
//
//	//wirestruct:record identifier=0x2a identifier_type=uint8
type Directive struct {
	Identifier     string `json:"identifier,omitempty"`
	IdentifierType string `json:"identifierType,omitempty"`
}

const directivePrefix = "//wirestruct:record"

// directiveArgPattern matches key=value where value is bare or double-quoted.
var directiveArgPattern = regexp.MustCompile(`^([a-z_]+)=("(?:[^"\\]|\\.)*"|\S+)$`)

// findDirective looks for the record marker in the given comment groups.
// CommentGroup.Text drops //go:-style directives, so raw comments are read.
func findDirective(groups ...*ast.CommentGroup) (string, bool) {
	for _, group := range groups {
		if group == nil {
			continue
		}
		for _, c := range group.List {
			text := strings.TrimSpace(c.Text)
			if text == directivePrefix {
				return "", true
			}
			if rest, ok := strings.CutPrefix(text, directivePrefix+" "); ok {
				return rest, true
			}
			if rest, ok := strings.CutPrefix(text, directivePrefix+"\t"); ok {
				return rest, true
			}
		}
	}
	return "", false
}

// parseDirective parses the argument list following the marker.
func parseDirective(args string) (Directive, error) {
	var d Directive
	seen := map[string]bool{}

	for _, arg := range splitArgs(args) {
		m := directiveArgPattern.FindStringSubmatch(arg)
		if m == nil {
			return d, fmt.Errorf("malformed directive argument %q (want key=value)", arg)
		}
		key, value := m[1], m[2]
		if strings.HasPrefix(value, `"`) {
			unq, err := strconv.Unquote(value)
			if err != nil {
				return d, fmt.Errorf("malformed quoted value for %s: %w", key, err)
			}
			value = unq
		}
		if seen[key] {
			return d, fmt.Errorf("directive argument %s given twice", key)
		}
		seen[key] = true

		switch key {
		case "identifier":
			d.Identifier = value
		case "identifier_type":
			d.IdentifierType = value
		default:
			return d, fmt.Errorf("unknown directive argument %q", key)
		}
	}
	return d, nil
}

// splitArgs splits on whitespace outside double quotes.
func splitArgs(s string) []string {
	var (
		args    []string
		cur     strings.Builder
		quoted  bool
		escaped bool
	)
	flush := func() {
		if cur.Len() > 0 {
			args = append(args, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
		case quoted && r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
		case !quoted && (r == ' ' || r == '\t'):
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()
	return args
}

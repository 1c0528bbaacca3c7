package common

import (
	"strings"
)

// ToSnakeCase converts Go identifiers to snake_case, keeping acronyms
// together: "XMLParser" -> "xml_parser", "DevID" -> "dev_id".
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		isUpper := r >= 'A' && r <= 'Z'

		if i > 0 && isUpper {
			prevIsLower := runes[i-1] >= 'a' && runes[i-1] <= 'z' || runes[i-1] >= '0' && runes[i-1] <= '9'
			// End of an acronym: "XMLParser" at 'P'.
			nextIsLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'

			if (prevIsLower || nextIsLower) && runes[i-1] != '_' {
				b.WriteByte('_')
			}
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// ToScreamingSnakeCase is ToSnakeCase in upper case, for macro names.
func ToScreamingSnakeCase(s string) string {
	return strings.ToUpper(ToSnakeCase(s))
}

// SanitizeLeadingDigit prefixes names that start with a digit with "n"
// to keep identifiers valid in target languages.
func SanitizeLeadingDigit(name string) string {
	if name == "" {
		return ""
	}
	if name[0] >= '0' && name[0] <= '9' {
		return "n" + name
	}
	return name
}

var cKeywords = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extern": true, "float": true, "for": true, "goto": true,
	"if": true, "inline": true, "int": true, "long": true, "register": true,
	"restrict": true, "return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "struct": true, "switch": true, "typedef": true, "union": true,
	"unsigned": true, "void": true, "volatile": true, "while": true, "bool": true,
}

// CIdent turns a Go field name into a C member name.
func CIdent(goName string) string {
	name := SanitizeLeadingDigit(ToSnakeCase(goName))
	if cKeywords[name] {
		return name + "_"
	}
	return name
}

package schema

import (
	"fmt"
	"go/token"
	"strconv"
	"strings"

	"github.com/Alia5/wirestruct/wire"
)

// Identifier is a constant discriminant bound to a record for external
// dispatch. Value and Type are Go source expressions. It occupies no bytes.
type Identifier struct {
	Value string
	Type  string
}

// Option configures Build.
type Option func(s *Schema) error

// WithIdentifier binds an identifier. Both value and typ must be given, or
// neither (which is a no-op). For sized integer types the value must be a
// literal in range.
func WithIdentifier(value, typ string) Option {
	return func(s *Schema) error {
		value = strings.TrimSpace(value)
		typ = strings.TrimSpace(typ)

		switch {
		case value == "" && typ == "":
			return nil
		case value == "" || typ == "":
			return recordError(KindIncompleteIdentifier, s.name,
				"both identifier and identifier type must be specified, or neither")
		}

		if err := checkIdentifier(value, typ); err != nil {
			return recordError(KindMalformedIdentifier, s.name, "%s", err.Error())
		}
		s.ident = &Identifier{Value: value, Type: typ}
		return nil
	}
}

func checkIdentifier(value, typ string) error {
	if sc, ok := wire.LookupScalar(typ); ok {
		if !sc.IsInteger() {
			return fmt.Errorf("identifier type %s is not an integer type", typ)
		}
		bits := sc.Width() * 8
		var err error
		if sc.Signed() {
			_, err = strconv.ParseInt(value, 0, bits)
		} else {
			_, err = strconv.ParseUint(value, 0, bits)
		}
		if err != nil {
			return fmt.Errorf("identifier %q is not a valid %s", value, typ)
		}
		return nil
	}

	// Named type, possibly package-qualified.
	for _, part := range strings.Split(typ, ".") {
		if !token.IsIdentifier(part) {
			return fmt.Errorf("identifier type %q is not a type name", typ)
		}
	}
	return nil
}

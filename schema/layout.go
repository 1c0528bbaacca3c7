package schema

import (
	"encoding/hex"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/Alia5/wirestruct/wire"
)

// Slot is one primitive byte range of a flattened layout.
type Slot struct {
	Path   string
	Offset int
	Width  int
	Type   string
	Order  wire.Order
}

// Layout flattens the schema into primitive slots, expanding nested records
// with dotted paths and absolute offsets.
func (s *Schema) Layout() []Slot {
	var out []Slot
	s.appendSlots(&out, "", 0)
	return out
}

func (s *Schema) appendSlots(out *[]Slot, prefix string, base int) {
	for _, f := range s.fields {
		path := prefix + f.Label()
		if f.Record != nil {
			f.Record.appendSlots(out, path+".", base+f.Offset)
			continue
		}
		*out = append(*out, Slot{
			Path:   path,
			Offset: base + f.Offset,
			Width:  f.Width,
			Type:   f.Scalar.String(),
			Order:  f.Order,
		})
	}
}

// Digest is a 128-bit BLAKE2b fingerprint of the wire layout: slot types,
// byte orders and widths in order. Field names and the identifier do not
// contribute, so two records with the same bytes on the wire share a digest.
func (s *Schema) Digest() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(s.length))
	for _, slot := range s.Layout() {
		b.WriteByte(';')
		b.WriteString(slot.Type)
		if slot.Order != wire.OrderNone {
			b.WriteByte('/')
			b.WriteString(slot.Order.String())
		}
	}

	h, err := blake2b.New(16, nil)
	if err != nil {
		// Only fails for sizes outside 1..64 or oversized keys.
		panic(err)
	}
	h.Write([]byte(b.String()))
	return hex.EncodeToString(h.Sum(nil))
}

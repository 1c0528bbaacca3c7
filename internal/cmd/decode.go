package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Alia5/wirestruct/internal/log"
	"github.com/Alia5/wirestruct/schema"
	"github.com/Alia5/wirestruct/wire"
)

type Decode struct {
	output `kong:"-"`

	Dir    string `arg:"" type:"existingdir" help:"Package directory to scan"`
	Record string `arg:"" help:"Record name"`
	Hex    string `arg:"" help:"Buffer as hex digits; spaces and colons are ignored"`
}

// Run is called by Kong when the decode command is executed.
func (c *Decode) Run(logger *slog.Logger, raw log.RawLogger) error {
	records, err := loadRecords(c.Dir, c.Record)
	if err != nil {
		return err
	}
	sch := records[0].Schema

	buf, err := wire.ParseHex(c.Hex)
	if err != nil {
		return err
	}
	raw.Log("decode "+sch.Name(), buf)

	rec, err := sch.Decode(buf)
	if err != nil {
		return err
	}
	logger.Debug("Decoded record", "record", sch.Name(), "bytes", len(buf))

	printRecord(c.writer(), sch, rec, "")
	return nil
}

func printRecord(w io.Writer, sch *schema.Schema, rec schema.Record, prefix string) {
	for i, f := range sch.Fields() {
		path := prefix + f.Label()
		if f.Record != nil {
			printRecord(w, f.Record, rec[i].(schema.Record), path+".")
			continue
		}
		typ := f.Scalar.String()
		if f.Order != wire.OrderNone {
			typ += "/" + f.Order.String()
		}
		fmt.Fprintf(w, "%s (%s) = %s\n", path, typ, wire.FormatValue(rec[i]))
	}
}

package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Alia5/wirestruct/internal/log"
	"github.com/Alia5/wirestruct/schema"
	"github.com/Alia5/wirestruct/wire"
)

type Encode struct {
	output `kong:"-"`

	Dir    string   `arg:"" type:"existingdir" help:"Package directory to scan"`
	Record string   `arg:"" help:"Record name"`
	Values []string `arg:"" optional:"" help:"Field assignments as path=value; nested fields use dots. Unset and blank fields are zero."`
}

// Run is called by Kong when the encode command is executed.
func (c *Encode) Run(logger *slog.Logger, raw log.RawLogger) error {
	records, err := loadRecords(c.Dir, c.Record)
	if err != nil {
		return err
	}
	sch := records[0].Schema

	rec := sch.Zero()
	for _, assignment := range c.Values {
		path, value, ok := strings.Cut(assignment, "=")
		if !ok {
			return fmt.Errorf("assignment %q: want path=value", assignment)
		}
		if err := assign(sch, rec, strings.TrimSpace(path), value); err != nil {
			return fmt.Errorf("assignment %q: %w", assignment, err)
		}
	}

	buf, err := sch.Marshal(rec)
	if err != nil {
		return err
	}
	raw.Log("encode "+sch.Name(), buf)
	logger.Debug("Encoded record", "record", sch.Name(), "bytes", len(buf))

	_, err = fmt.Fprintln(c.writer(), wire.FormatHex(buf))
	return err
}

// assign parses value into the field addressed by a dotted path.
func assign(sch *schema.Schema, rec schema.Record, path, value string) error {
	head, rest, nested := strings.Cut(path, ".")

	for i, f := range sch.Fields() {
		if f.Label() != head {
			continue
		}
		if f.Name == "" {
			// Go blank fields are padding; generated encoders always zero them.
			return fmt.Errorf("%s is a blank field and always encodes as zero", head)
		}
		if f.Record != nil {
			if !nested {
				return fmt.Errorf("%s is a %s record; assign its fields with %s.<field>", head, f.Record.Name(), head)
			}
			return assign(f.Record, rec[i].(schema.Record), rest, value)
		}
		if nested {
			return fmt.Errorf("%s is not a record", head)
		}
		v, err := wire.ParseValue(f.Scalar, value)
		if err != nil {
			return err
		}
		rec[i] = v
		return nil
	}
	return fmt.Errorf("record %s has no field %q", sch.Name(), head)
}

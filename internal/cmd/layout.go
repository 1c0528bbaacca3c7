package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	toml "github.com/pelletier/go-toml"
	"golang.org/x/term"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/wirestruct/wire"
)

type Layout struct {
	output `kong:"-"`

	Dir    string `arg:"" type:"existingdir" help:"Package directory to scan"`
	Record string `help:"Only print this record"`
	Format string `help:"Output format" enum:"table,json,yaml,toml" default:"table" env:"WIRESTRUCT_LAYOUT_FORMAT"`
}

type layoutDoc struct {
	HostOrder string         `json:"hostOrder" yaml:"hostOrder" toml:"hostOrder"`
	Records   []layoutRecord `json:"records" yaml:"records" toml:"records"`
}

type layoutRecord struct {
	Name           string       `json:"name" yaml:"name" toml:"name"`
	ByteLen        int          `json:"byteLen" yaml:"byteLen" toml:"byteLen"`
	Digest         string       `json:"digest" yaml:"digest" toml:"digest"`
	Identifier     string       `json:"identifier,omitempty" yaml:"identifier,omitempty" toml:"identifier,omitempty"`
	IdentifierType string       `json:"identifierType,omitempty" yaml:"identifierType,omitempty" toml:"identifierType,omitempty"`
	Slots          []layoutSlot `json:"slots" yaml:"slots" toml:"slots"`
}

// layoutSlot.Host is "native" when Order matches the host and "swap" when it
// does not.
type layoutSlot struct {
	Path   string `json:"path" yaml:"path" toml:"path"`
	Offset int    `json:"offset" yaml:"offset" toml:"offset"`
	Width  int    `json:"width" yaml:"width" toml:"width"`
	Type   string `json:"type" yaml:"type" toml:"type"`
	Order  string `json:"order,omitempty" yaml:"order,omitempty" toml:"order,omitempty"`
	Host   string `json:"host,omitempty" yaml:"host,omitempty" toml:"host,omitempty"`
}

// Run is called by Kong when the layout command is executed.
func (c *Layout) Run() error {
	records, err := loadRecords(c.Dir, c.Record)
	if err != nil {
		return err
	}

	host := wire.NativeOrder()
	doc := layoutDoc{HostOrder: host.String()}
	for _, rec := range records {
		lr := layoutRecord{
			Name:    rec.Name,
			ByteLen: rec.Schema.Len(),
			Digest:  rec.Schema.Digest(),
			Slots:   []layoutSlot{},
		}
		if ident, ok := rec.Schema.Identifier(); ok {
			lr.Identifier = ident.Value
			lr.IdentifierType = ident.Type
		}
		for _, s := range rec.Schema.Layout() {
			slot := layoutSlot{Path: s.Path, Offset: s.Offset, Width: s.Width, Type: s.Type}
			if s.Order != wire.OrderNone {
				slot.Order = s.Order.String()
				slot.Host = hostRelation(s.Order, host)
			}
			lr.Slots = append(lr.Slots, slot)
		}
		doc.Records = append(doc.Records, lr)
	}

	w := c.writer()
	var data []byte
	switch c.Format {
	case "json":
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(doc)
	case "toml":
		data, err = toml.Marshal(doc)
	default:
		return writeTable(w, doc, isTerminal(w))
	}
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func hostRelation(o, host wire.Order) string {
	if o == host {
		return "native"
	}
	return "swap"
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeTable prints one block per record. Columns are aligned on a terminal
// and tab-separated otherwise, so the output stays easy to cut or awk.
func writeTable(w io.Writer, doc layoutDoc, aligned bool) error {
	out := w
	var tw *tabwriter.Writer
	if aligned {
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		out = tw
	}

	for i, rec := range doc.Records {
		if i > 0 {
			fmt.Fprintln(out)
		}
		header := fmt.Sprintf("%s: %d bytes, digest %s, host %s", rec.Name, rec.ByteLen, rec.Digest, doc.HostOrder)
		if rec.Identifier != "" {
			header += fmt.Sprintf(", identifier %s (%s)", rec.Identifier, rec.IdentifierType)
		}
		fmt.Fprintln(out, header)
		fmt.Fprintln(out, strings.Join([]string{"OFFSET", "WIDTH", "TYPE", "ORDER", "HOST", "FIELD"}, "\t"))
		for _, s := range rec.Slots {
			order, host := s.Order, s.Host
			if order == "" {
				order, host = "-", "-"
			}
			fmt.Fprintf(out, "%d\t%d\t%s\t%s\t%s\t%s\n", s.Offset, s.Width, s.Type, order, host, s.Path)
		}
	}

	if tw != nil {
		return tw.Flush()
	}
	return nil
}

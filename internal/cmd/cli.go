package cmd

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// CLI is the root command line of wirestruct.
type CLI struct {
	Config  string           `help:"Path to a JSON, YAML or TOML config file" env:"WIRESTRUCT_CONFIG" template:"-"`
	Version kong.VersionFlag `help:"Print version and exit" template:"-"`
	Log     LogConfig        `embed:"" prefix:"log."`

	Generate  Generate      `cmd:"" help:"Scan packages and write encoders and decoders"`
	Check     Check         `cmd:"" help:"Fail if generated files are missing or out of date"`
	Layout    Layout        `cmd:"" help:"Print the byte layout of records"`
	Decode    Decode        `cmd:"" help:"Decode a hex buffer with a record schema"`
	Encode    Encode        `cmd:"" help:"Encode field values with a record schema"`
	ConfigCmd ConfigCommand `cmd:"" name:"config" help:"Configuration helpers" template:"-"`
}

type LogConfig struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"WIRESTRUCT_LOG_LEVEL"`
	File    string `help:"Also write logs to this file" env:"WIRESTRUCT_LOG_FILE"`
	RawFile string `help:"Write raw buffer hex dumps to this file" env:"WIRESTRUCT_LOG_RAW_FILE"`
}

// output is embedded by commands that print results. Tests swap the writer.
type output struct {
	out io.Writer
}

func (o *output) writer() io.Writer {
	if o.out == nil {
		return os.Stdout
	}
	return o.out
}

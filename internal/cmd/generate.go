package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Alia5/wirestruct/internal/codegen/common"
	"github.com/Alia5/wirestruct/internal/codegen/generator"
	"github.com/Alia5/wirestruct/internal/codegen/meta"
)

type Generate struct {
	Dirs    []string `arg:"" optional:"" type:"existingdir" help:"Package directories to scan (default: current directory)"`
	Lang    []string `help:"Output languages: go, c, or all" default:"go" sep:"," env:"WIRESTRUCT_LANG"`
	COutput string   `name:"c-output" help:"Directory for C headers (default: next to each package)" type:"path" env:"WIRESTRUCT_C_OUTPUT"`
}

// Run is called by Kong when the generate command is executed.
func (c *Generate) Run(logger *slog.Logger) error {
	gen, err := newGenerator(logger, c.COutput)
	if err != nil {
		return err
	}

	dirs := defaultDirs(c.Dirs)
	logger.Info("Starting code generation", "dirs", dirs, "lang", c.Lang)

	var written []string
	if allLangs(c.Lang) {
		written, err = gen.GenAll(dirs)
		if err != nil {
			return err
		}
	} else {
		for _, lang := range c.Lang {
			files, err := gen.GenerateLang(lang, dirs)
			written = append(written, files...)
			if err != nil {
				return err
			}
		}
	}
	logger.Info("Code generation complete", "files", len(written))
	return nil
}

type Check struct {
	Dirs    []string `arg:"" optional:"" type:"existingdir" help:"Package directories to scan (default: current directory)"`
	Lang    []string `help:"Output languages to verify: go, c, or all" default:"go" sep:"," env:"WIRESTRUCT_LANG"`
	COutput string   `name:"c-output" help:"Directory holding C headers (default: next to each package)" type:"path" env:"WIRESTRUCT_C_OUTPUT"`
}

// ErrStale is returned by check when any generated file needs regenerating.
var ErrStale = errors.New("generated files are out of date; run wirestruct generate")

// Run is called by Kong when the check command is executed.
func (c *Check) Run(logger *slog.Logger) error {
	gen, err := newGenerator(logger, c.COutput)
	if err != nil {
		return err
	}

	langs := c.Lang
	if allLangs(langs) {
		langs = generator.Languages()
	}
	stale, err := gen.Check(langs, defaultDirs(c.Dirs))
	if err != nil {
		return err
	}
	if len(stale) > 0 {
		return fmt.Errorf("%w: %v", ErrStale, stale)
	}
	logger.Info("Generated files are up to date")
	return nil
}

func newGenerator(logger *slog.Logger, cOutput string) (*generator.Generator, error) {
	version, err := common.GetVersion()
	if err != nil {
		return nil, fmt.Errorf("get version: %w", err)
	}
	return generator.New(logger, &meta.Metadata{Version: version, COutput: cOutput}), nil
}

func allLangs(langs []string) bool {
	return len(langs) == 1 && langs[0] == "all"
}

func defaultDirs(dirs []string) []string {
	if len(dirs) == 0 {
		return []string{"."}
	}
	return dirs
}

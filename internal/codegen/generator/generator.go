package generator

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	cgen "github.com/Alia5/wirestruct/internal/codegen/generator/c"
	"github.com/Alia5/wirestruct/internal/codegen/generator/golang"
	"github.com/Alia5/wirestruct/internal/codegen/meta"
	"github.com/Alia5/wirestruct/internal/codegen/scanner"
	"github.com/Alia5/wirestruct/wire"
)

type Generator struct {
	logger *slog.Logger
	md     *meta.Metadata
}

type LanguageGenerator func(logger *slog.Logger, pkg *scanner.Package, md *meta.Metadata) ([]meta.File, error)

var generators = map[string]LanguageGenerator{
	"go": golang.Generate,
	"c":  cgen.Generate,
}

// Languages lists the supported output languages.
func Languages() []string {
	langs := make([]string, 0, len(generators))
	for k := range generators {
		langs = append(langs, k)
	}
	sort.Strings(langs)
	return langs
}

func New(logger *slog.Logger, md *meta.Metadata) *Generator {
	return &Generator{
		logger: logger,
		md:     md,
	}
}

// ScanAll scans every package directory. All packages are scanned even if
// one fails, so a single run reports every schema error.
func (g *Generator) ScanAll(dirs []string) ([]*scanner.Package, error) {
	var (
		pkgs []*scanner.Package
		errs []error
	)
	for _, dir := range dirs {
		g.logger.Debug("Scanning package", "dir", dir)
		pkg, err := scanner.ScanPackage(dir)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", dir, err))
			continue
		}
		if len(pkg.Records) == 0 {
			g.logger.Warn("No records found", "dir", dir)
			continue
		}

		for _, rec := range pkg.Records {
			for _, f := range rec.Schema.Fields() {
				if f.IgnoredOrder != wire.OrderNone {
					g.logger.Warn("Byte order has no effect on this field",
						"record", rec.Name, "field", f.Label(), "type", f.TypeName(), "order", f.IgnoredOrder)
				}
			}
		}
		g.logger.Info("Scanned package", "package", pkg.Name, "dir", dir, "records", len(pkg.Records))
		pkgs = append(pkgs, pkg)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return pkgs, nil
}

// Render renders all packages for one language without touching disk.
func (g *Generator) Render(lang string, pkgs []*scanner.Package) ([]meta.File, error) {
	gen, ok := generators[lang]
	if !ok {
		return nil, fmt.Errorf("unsupported language '%s' (supported: %v)", lang, Languages())
	}

	var files []meta.File
	for _, pkg := range pkgs {
		out, err := gen(g.logger, pkg, g.md)
		if err != nil {
			return nil, fmt.Errorf("generate %s for %s: %w", lang, pkg.Name, err)
		}
		files = append(files, out...)
	}
	return files, nil
}

// GenerateLang scans dirs and writes the output of one language.
func (g *Generator) GenerateLang(lang string, dirs []string) ([]string, error) {
	return g.generate([]string{lang}, dirs)
}

// GenAll writes the output of every supported language.
func (g *Generator) GenAll(dirs []string) ([]string, error) {
	return g.generate(Languages(), dirs)
}

func (g *Generator) generate(langs, dirs []string) ([]string, error) {
	pkgs, err := g.ScanAll(dirs)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, lang := range langs {
		g.logger.Info("Generating codecs", "language", lang)
		files, err := g.Render(lang, pkgs)
		if err != nil {
			return written, err
		}
		for _, f := range files {
			if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
				return written, fmt.Errorf("failed to create output directory: %w", err)
			}
			if err := os.WriteFile(f.Path, f.Content, 0o644); err != nil {
				return written, fmt.Errorf("write %s: %w", f.Path, err)
			}
			g.logger.Info("Wrote file", "language", lang, "path", f.Path, "bytes", len(f.Content))
			written = append(written, f.Path)
		}
	}
	return written, nil
}

// Check renders without writing and returns the paths whose content on
// disk is missing or differs from a fresh run.
func (g *Generator) Check(langs, dirs []string) ([]string, error) {
	pkgs, err := g.ScanAll(dirs)
	if err != nil {
		return nil, err
	}

	var stale []string
	for _, lang := range langs {
		files, err := g.Render(lang, pkgs)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			onDisk, err := os.ReadFile(f.Path)
			switch {
			case errors.Is(err, os.ErrNotExist):
				g.logger.Warn("Generated file missing", "path", f.Path)
				stale = append(stale, f.Path)
			case err != nil:
				return nil, fmt.Errorf("read %s: %w", f.Path, err)
			case !bytes.Equal(onDisk, f.Content):
				g.logger.Warn("Generated file out of date", "path", f.Path)
				stale = append(stale, f.Path)
			default:
				g.logger.Debug("Generated file up to date", "path", f.Path)
			}
		}
	}
	return stale, nil
}

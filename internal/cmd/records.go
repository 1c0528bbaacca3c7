package cmd

import (
	"fmt"
	"sort"

	"github.com/Alia5/wirestruct/internal/codegen/scanner"
)

// loadRecords scans dir and returns the named record, or every record when
// name is empty.
func loadRecords(dir, name string) ([]*scanner.Record, error) {
	pkg, err := scanner.ScanPackage(dir)
	if err != nil {
		return nil, err
	}
	if name == "" {
		if len(pkg.Records) == 0 {
			return nil, fmt.Errorf("%s: no records found", dir)
		}
		return pkg.Records, nil
	}
	rec := pkg.Record(name)
	if rec == nil {
		known := make([]string, 0, len(pkg.Records))
		for _, r := range pkg.Records {
			known = append(known, r.Name)
		}
		sort.Strings(known)
		return nil, fmt.Errorf("%s: no record named %q (have %v)", dir, name, known)
	}
	return []*scanner.Record{rec}, nil
}

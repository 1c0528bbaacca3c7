// scan-records dumps the records found in the given package directories as
// JSON. It is a debugging aid for the scanner.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Alia5/wirestruct/internal/codegen/scanner"
)

func main() {
	dirs := os.Args[1:]
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	var pkgs []*scanner.Package
	for _, dir := range dirs {
		pkg, err := scanner.ScanPackage(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to scan %s: %v\n", dir, err)
			os.Exit(1)
		}
		pkgs = append(pkgs, pkg)
	}

	output, err := json.MarshalIndent(pkgs, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(output))
}

// Package main rewrites enumer-generated sources to report errors through
// cockroachdb/errors instead of fmt.
package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

const generatedFilePerms = 0o644

// ErrUsage indicates that no target files were given.
var ErrUsage = errors.New("usage: enumerfix <file> [<file>...]")

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}

	for _, filename := range args[1:] {
		if err := fixFile(filename); err != nil {
			return errors.Wrapf(err, "fixing %s", filename)
		}
	}

	return nil
}

func fixFile(filename string) error {
	//nolint:gosec // G304: File path from CLI argument is expected
	content, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err, "reading file")
	}

	if err := os.WriteFile(filename, rewrite(content), generatedFilePerms); err != nil {
		return errors.Wrap(err, "writing file")
	}

	return nil
}

var fmtUse = regexp.MustCompile(`\bfmt\.`)

// rewrite swaps fmt.Errorf for errors.Newf and settles the imports: the
// fmt import survives only while other fmt calls remain. Files without
// fmt.Errorf pass through untouched.
func rewrite(content []byte) []byte {
	src := string(content)
	if !strings.Contains(src, "fmt.Errorf") {
		return content
	}

	src = strings.ReplaceAll(src, "fmt.Errorf", "errors.Newf")

	if fmtUse.MatchString(src) {
		return []byte(appendErrorsImport(src))
	}

	return []byte(swapImport(src, `"fmt"`, `"github.com/cockroachdb/errors"`))
}

var importBlock = regexp.MustCompile(`import \(\n([\s\S]*?)\n\)`)

// appendErrorsImport adds cockroachdb/errors at the end of the import
// block unless it is already present. Enumer emits a block whenever it
// imports more than one package, so the single-line form never reaches
// this path.
func appendErrorsImport(src string) string {
	match := importBlock.FindStringSubmatch(src)
	if match == nil {
		return src
	}

	if strings.Contains(match[1], `"github.com/cockroachdb/errors"`) {
		return src
	}

	return importBlock.ReplaceAllString(
		src,
		"import (\n"+match[1]+"\n\t\"github.com/cockroachdb/errors\"\n)",
	)
}

// swapImport rewrites oldImport to newImport in either the single-line or
// the block form.
func swapImport(src, oldImport, newImport string) string {
	single := "import " + oldImport
	if strings.Contains(src, single) {
		return strings.Replace(src, single, "import "+newImport, 1)
	}

	return strings.Replace(src, "\t"+oldImport, "\t"+newImport, 1)
}

// Package main provides the entry point for vesperparse, a driver that
// parses a single Vesper source file and reports its declarations and
// diagnostics.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/parser"
)

func main() {
	var (
		silMode  = flag.Bool("sil", false, "enable SIL top-level forms and type attributes")
		allowTop = flag.Bool("allow-top-level-code", false, "treat the file as a script, allowing executable top-level code")
		delay    = flag.Bool("delay-bodies", false, "defer function/constructor/destructor bodies instead of parsing them eagerly")
	)
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: vesperparse [options] <file>")
		os.Exit(1)
	}

	if err := parseFile(args[0], *silMode, *allowTop, *delay); err != nil {
		fmt.Fprintf(os.Stderr, "vesperparse: %v\n", err)
		os.Exit(1)
	}
}

func parseFile(path string, silMode, allowTop, delay bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	arena := ast.NewArena()
	diags := diagnostic.NewEngine()

	p := parser.New(path, string(src), arena, diags)
	p.SILMode = silMode
	p.AllowTopLevelCode = allowTop
	if delay {
		p.EnableBodyDelay()
	}

	sawTopLevelCode := p.ParseTopLevel()

	for _, d := range p.FileContext().Members {
		fmt.Printf("%s %s %q\n", d.Span.Start.String(), d.Kind.String(), d.Name)
	}
	fmt.Fprint(os.Stderr, diags.Format())

	if diags.HasErrors() {
		os.Exit(1)
	}
	if sawTopLevelCode {
		fmt.Fprintln(os.Stderr, "note: file contains executable top-level code")
	}
	return nil
}

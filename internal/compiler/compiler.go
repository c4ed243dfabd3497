package compiler

import (
	"fmt"
	"os"
	"strings"

	"minicc/pkg/codegen/assembly"
	x86_64 "minicc/pkg/codegen/assembly/x86_64"
	"minicc/pkg/color"
	"minicc/pkg/literal"
	"minicc/pkg/pattern"

	"github.com/charmbracelet/log"
)

type Compiler struct {
	Help       bool   // Show help message
	Verbose    bool   // Enable verbose output
	NoColor    bool   // Disable colored output
	SourceFile string // Path to the source file
	OutputFile string // Path to the output file; derived from SourceFile when empty
}

// Compile runs the pipeline on the source file: load and trim, recognize the
// construct, validate the literal, generate assembly, and write it to the
// output path. Each stage either advances or fails the whole invocation; the
// output file is written once at the end or not at all.
func (opts *Compiler) Compile() error {
	log.Info("Processing file", "file", opts.SourceFile)

	source, err := opts.loadSource()
	if err != nil {
		return err
	}

	digits, ok := pattern.Find(source)
	if !ok {
		fmt.Println(color.BrightRedText("=== Unrecognized Source ==="))
		fmt.Println("expected a function of the form " +
			color.Fragment("int main() { return <number>; }"))
		return fmt.Errorf("%w: %s", pattern.ErrNoMatch, opts.SourceFile)
	}
	log.Info("Matched construct", "literal", digits)

	value, err := literal.Parse(digits)
	if err != nil {
		fmt.Println(color.BrightRedText("=== Invalid Literal ==="))
		fmt.Println("return value " + color.Fragment(digits) +
			" does not fit a 32-bit signed integer")
		return err
	}

	outputFile := opts.OutputFile
	if outputFile == "" {
		outputFile, err = DeriveOutputPath(opts.SourceFile)
		if err != nil {
			return err
		}
	}

	var arch assembly.Assembly = x86_64.NewX8664(value)
	if err := arch.Generate(); err != nil {
		return fmt.Errorf("assembly generation failed: %w", err)
	}

	if opts.Verbose {
		fmt.Println(color.GreenText("\n=== Generated Assembly ==="))
		fmt.Println(arch.GetCode())
	}

	if err := os.WriteFile(outputFile, []byte(arch.GetCode()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputFile, err)
	}
	log.Info("Wrote assembly", "file", outputFile)

	return nil
}

// loadSource reads the whole source file and strips ASCII whitespace from
// both ends. The file handle is released before recognition begins.
func (opts *Compiler) loadSource() (string, error) {
	input, err := os.ReadFile(opts.SourceFile)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", opts.SourceFile, err)
	}
	return strings.Trim(string(input), " \t\n\r"), nil
}

package main

import (
	"flag"
	"fmt"
	"os"

	"minicc/internal/compiler"
	"minicc/internal/logger"
	"minicc/pkg/color"

	"github.com/charmbracelet/log"
)

// Main entry point for the minicc compiler.
func main() {
	options := compiler.Compiler{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.StringVar(&options.OutputFile, "o", "", "Output assembly file (default: input path with .s extension)")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] <file>\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) == 0 {
		log.Fatal("No input file provided", "help", fmt.Sprintf("%s -h", os.Args[0]))
	}
	if len(args) > 1 {
		log.Fatal("Expected exactly one input file", "got", len(args))
	}

	options.SourceFile = args[0]

	err := options.Compile()
	if err != nil {
		log.Fatal("Compilation failed", "error", err)
	}
}

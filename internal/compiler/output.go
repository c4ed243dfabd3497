package compiler

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFileName reports an input path without an extension separator,
// which leaves the output path underivable.
var ErrInvalidFileName = errors.New("input file name has no extension")

// DeriveOutputPath computes the assembly output path from the input path by
// replacing everything from the last '.' with ".s". It is pure string
// surgery and never consults the file system.
func DeriveOutputPath(inputPath string) (string, error) {
	dot := strings.LastIndexByte(inputPath, '.')
	if dot < 0 {
		return "", fmt.Errorf("%w: %s", ErrInvalidFileName, inputPath)
	}
	return inputPath[:dot] + ".s", nil
}

// Package literal validates the digit substring captured by the recognizer.
// The grammar only guarantees digit characters; it does not guarantee a value
// that fits the 32-bit register the emitter targets.
package literal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLiteral reports a captured literal that is empty, contains
// non-digit characters, or overflows the 32-bit signed integer range.
var ErrInvalidLiteral = errors.New("invalid integer literal")

// Parse trims ASCII whitespace from the captured substring and parses it as
// a base-10 signed 32-bit integer. The grammar forbids a sign character, so
// any sign here is rejected as a non-digit.
func Parse(s string) (int32, error) {
	trimmed := strings.Trim(s, " \t\n\r")
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty literal", ErrInvalidLiteral)
	}

	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] < '0' || trimmed[i] > '9' {
			return 0, fmt.Errorf("%w: %q is not a digit sequence", ErrInvalidLiteral, trimmed)
		}
	}

	value, err := strconv.ParseInt(trimmed, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q exceeds 32-bit signed range", ErrInvalidLiteral, trimmed)
	}

	return int32(value), nil
}

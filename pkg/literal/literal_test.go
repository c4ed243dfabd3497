package literal_test

import (
	"errors"
	"testing"

	"minicc/pkg/literal"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		input       string
		expected    int32
		description string
	}{
		{"42", 42, "small integer"},
		{"0", 0, "zero"},
		{"007", 7, "leading zeros"},
		{"2147483647", 2147483647, "int32 max"},
		{" 7 ", 7, "surrounding whitespace from match boundaries"},
		{"\t365\n", 365, "tab and newline padding"},
	}

	for _, test := range tests {
		got, err := literal.Parse(test.input)
		if err != nil {
			t.Errorf("Input %q (%s): unexpected error %v", test.input, test.description, err)
			continue
		}
		if got != test.expected {
			t.Errorf("Input %q (%s): expected %d, got %d",
				test.input, test.description, test.expected, got)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		input       string
		description string
	}{
		{"", "empty string"},
		{"   ", "whitespace only"},
		{"2147483648", "one past int32 max"},
		{"99999999999999999999", "arbitrarily long digit sequence"},
		{"-5", "sign character"},
		{"12a", "trailing non-digit"},
		{"4 2", "interior whitespace"},
	}

	for _, test := range tests {
		_, err := literal.Parse(test.input)
		if err == nil {
			t.Errorf("Input %q (%s): expected error, got none", test.input, test.description)
			continue
		}
		if !errors.Is(err, literal.ErrInvalidLiteral) {
			t.Errorf("Input %q (%s): expected ErrInvalidLiteral, got %v",
				test.input, test.description, err)
		}
	}
}

package pattern_test

import (
	"testing"

	"minicc/pkg/pattern"
)

func TestFindMatches(t *testing.T) {
	tests := []struct {
		input       string
		expected    string
		description string
	}{
		{"int main() { return 42; }", "42", "canonical form"},
		{"int main ( ) { return   7 ; }", "7", "irregular spacing"},
		{"int main(){return 0;}", "0", "minimal spacing"},
		{"int  main\n(\n)\n{\nreturn\t100;\n}", "100", "tabs and newlines between tokens"},
		{"int main() { return 2147483647; }", "2147483647", "long digit sequence"},
		{"// prelude\nint main() { return 3; }\n// trailing", "3", "construct embedded in larger text"},
		{"int main() { return 1; } int main() { return 2; }", "1", "first occurrence wins"},
		{"integer x; int main() { return 5; }", "5", "keyword prefix earlier in text"},
	}

	for _, test := range tests {
		got, ok := pattern.Find(test.input)
		if !ok {
			t.Errorf("Failed to match %q (%s)", test.input, test.description)
			continue
		}
		if got != test.expected {
			t.Errorf("Input %q (%s): expected literal %q, got %q",
				test.input, test.description, test.expected, got)
		}
	}
}

func TestFindRejects(t *testing.T) {
	tests := []struct {
		input       string
		description string
	}{
		{"", "empty input"},
		{"int main() { return; }", "missing literal"},
		{"int main() { return 42 }", "missing semicolon"},
		{"int main() { return 42; ", "missing closing brace"},
		{"int main() { return -5; }", "signed literal"},
		{"int main() { return +5; }", "explicit plus sign"},
		{"int main() { return2; }", "no whitespace after return"},
		{"intmain() { return 2; }", "no whitespace after int"},
		{"int Main() { return 2; }", "wrong case for main"},
		{"void main() { return 5; }", "wrong return type keyword"},
		{"int mains() { return 5; }", "identifier extends past keyword"},
		{"int main { return 5; }", "missing parentheses"},
		{"int main() { returnx 5; }", "misspelled return"},
	}

	for _, test := range tests {
		if got, ok := pattern.Find(test.input); ok {
			t.Errorf("Input %q (%s): expected no match, got literal %q",
				test.input, test.description, got)
		}
	}
}

package doi

import (
	"reflect"
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trailing period",
			input: "10.1145/3292500.3330701.",
			want:  "10.1145/3292500.3330701",
		},
		{
			name:  "interior period kept",
			input: "10.1234/abc.5",
			want:  "10.1234/abc.5",
		},
		{
			name:  "stacked punctuation",
			input: "10.1000/182).,",
			want:  "10.1000/182",
		},
		{
			name:  "closing bracket and quote",
			input: `10.1000/xyz]"`,
			want:  "10.1000/xyz",
		},
		{
			name:  "html entity artifact",
			input: "10.1000/ab&amp;cd",
			want:  "10.1000/abcd",
		},
		{
			name:  "already clean",
			input: "10.1038/nature12373",
			want:  "10.1038/nature12373",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single doi in prose",
			input: "as shown previously (doi: 10.1038/nature12373).",
			want:  []string{"10.1038/nature12373"},
		},
		{
			name:  "doi inside url",
			input: "available at https://doi.org/10.1000/182 for details",
			want:  []string{"10.1000/182"},
		},
		{
			name:  "case-insensitive dedup keeps first casing",
			input: "10.1234/ABCdef.12 and later 10.1234/abcDEF.12",
			want:  []string{"10.1234/ABCdef.12"},
		},
		{
			name:  "short candidates discarded",
			input: "see 10.1234/x for details",
			want:  nil,
		},
		{
			name:  "no dois",
			input: "plain text with numbers 10.5 and 2020",
			want:  nil,
		},
		{
			name:  "multiple dois in order",
			input: "[1] 10.1145/3292500.3330701. [2] 10.1038/nature12373.",
			want:  []string{"10.1145/3292500.3330701", "10.1038/nature12373"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractProperties(t *testing.T) {
	input := "10.1038/nature12373 10.1038/NATURE12373 10.1234/x 10.1000/182."
	got := Extract(input)

	seen := make(map[string]bool)
	for _, d := range got {
		if len(d) < MinLength {
			t.Errorf("Extract returned %q shorter than %d chars", d, MinLength)
		}
		key := strings.ToLower(d)
		if seen[key] {
			t.Errorf("Extract returned case-insensitive duplicate %q", d)
		}
		seen[key] = true
	}

	// Repeated invocation on the same input is deterministic.
	again := Extract(input)
	if !reflect.DeepEqual(got, again) {
		t.Errorf("Extract not deterministic: %v vs %v", got, again)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "https resolver prefix",
			input: "https://doi.org/10.1038/nature12373",
			want:  "10.1038/nature12373",
		},
		{
			name:  "dx resolver prefix",
			input: "http://dx.doi.org/10.1000/182",
			want:  "10.1000/182",
		},
		{
			name:  "doi scheme lowercase",
			input: "doi:10.1000/182",
			want:  "10.1000/182",
		},
		{
			name:  "doi scheme uppercase",
			input: "DOI:10.1000/182",
			want:  "10.1000/182",
		},
		{
			name:  "trailing punctuation",
			input: "10.1000/182).",
			want:  "10.1000/182",
		},
		{
			name:  "percent-encoded slash",
			input: "10.1000%2F182",
			want:  "10.1000/182",
		},
		{
			name:  "surrounding whitespace",
			input: "  10.1038/nature12373  ",
			want:  "10.1038/nature12373",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"https://doi.org/10.1038/nature12373",
		"doi:10.1000/182.",
		"10.1145/3292500.3330701",
		"10.1000%2F182",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"10.1038/nature12373", true},
		{"10.9999/fake.doi.12345", true},
		{"10.123/short-registrant", false},
		{"11.1234/wrong-prefix", false},
		{"10.1234/", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValid(tt.input); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

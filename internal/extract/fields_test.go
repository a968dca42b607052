package extract

import (
	"reflect"
	"testing"
)

func TestParseFieldsYear(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "parenthesized year",
			text: "Smith, J. (2020). A Great Paper. Journal X.",
			want: 2020,
		},
		{
			name: "bare year",
			text: "J. Smith, A Great Paper, Journal X, 1999.",
			want: 1999,
		},
		{
			name: "first year wins",
			text: "Smith, J. (2015). A paper about the year 2020. Journal X.",
			want: 2015,
		},
		{
			name: "no year",
			text: "Smith, J. A Great Paper. Journal X.",
			want: 0,
		},
		{
			name: "out of range ignored",
			text: "Smith, J. (1850). An old manuscript.",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseFields(tt.text); got.Year != tt.want {
				t.Errorf("ParseFields(%q).Year = %d, want %d", tt.text, got.Year, tt.want)
			}
		})
	}
}

func TestParseFieldsTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "quoted title keeps interior punctuation",
			text: `A. Smith and B. Jones, "Deep Residual Learning for Image Recognition," CVPR, 2016.`,
			want: "Deep Residual Learning for Image Recognition,",
		},
		{
			name: "curly quoted title",
			text: "A. Smith, “Attention Is All You Need,” NeurIPS, 2017.",
			want: "Attention Is All You Need,",
		},
		{
			name: "title after parenthesized year",
			text: "Smith, J. (2020). A Great Paper on Citation Graphs. Journal X.",
			want: "A Great Paper on Citation Graphs. Journal X",
		},
		{
			name: "sentence fallback skips author list",
			text: "Smith, J. Machine learning approaches to bibliographic verification? Journal X, 2020.",
			want: "Machine learning approaches to bibliographic verification",
		},
		{
			name: "no plausible title",
			text: "Smith, J. Short one. 2020.",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseFields(tt.text); got.Title != tt.want {
				t.Errorf("ParseFields(%q).Title = %q, want %q", tt.text, got.Title, tt.want)
			}
		})
	}
}

func TestParseFieldsAuthors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "surname first with initials",
			text: "Smith, J., Jones, A. B. (2020). A Great Paper. Journal X.",
			want: []string{"Smith, J.", "Jones, A. B."},
		},
		{
			name: "initial first",
			text: "J. Smith and B. Jones, Neural networks for citation analysis, Journal X, 2020.",
			want: []string{"J. Smith", "B. Jones"},
		},
		{
			name: "no recognizable authors",
			text: "anonymous technical report with a long descriptive title, 2020.",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFields(tt.text)
			if !reflect.DeepEqual(got.Authors, tt.want) {
				t.Errorf("ParseFields(%q).Authors = %v, want %v", tt.text, got.Authors, tt.want)
			}
		})
	}
}

func TestParseFieldsEmpty(t *testing.T) {
	got := ParseFields("")
	if got.Title != "" || got.Authors != nil || got.Year != 0 {
		t.Errorf("ParseFields(\"\") = %+v, want zero value", got)
	}
}

func TestParseFieldsNormalizesWhitespace(t *testing.T) {
	got := ParseFields("Smith,   J.\n\t(2020).   A Great Paper on Whitespace.  Journal X.")
	if got.Year != 2020 {
		t.Errorf("Year = %d, want 2020", got.Year)
	}
	if got.Title != "A Great Paper on Whitespace. Journal X" {
		t.Errorf("Title = %q", got.Title)
	}
}

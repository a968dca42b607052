package extract

import (
	"strings"
	"testing"
)

func TestFindReferencesSection(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantFound bool
		contains  string
		excludes  string
	}{
		{
			name:      "references header to end",
			text:      "Introduction text.\n\nReferences\n[1] Smith, J. (2020). A paper.\n",
			wantFound: true,
			contains:  "[1] Smith",
		},
		{
			name:      "bibliography header",
			text:      "Body.\n\nBibliography\n[1] Jones, A. (2019).\n",
			wantFound: true,
			contains:  "[1] Jones",
		},
		{
			name:      "works cited header",
			text:      "Body.\n\nWorks Cited\n[1] Doe, J.\n",
			wantFound: true,
			contains:  "[1] Doe",
		},
		{
			name:      "all caps header",
			text:      "Body.\n\nREFERENCES\n[1] Smith, J.\n",
			wantFound: true,
			contains:  "[1] Smith",
		},
		{
			name:      "stops at appendix",
			text:      "Body.\n\nReferences\n[1] Smith, J.\n\nAppendix\nExtra tables.\n",
			wantFound: true,
			contains:  "[1] Smith",
			excludes:  "Extra tables",
		},
		{
			name:      "stops at acknowledgments",
			text:      "Body.\n\nReferences\n[1] Smith, J.\n\nAcknowledgments\nThanks all.\n",
			wantFound: true,
			contains:  "[1] Smith",
			excludes:  "Thanks all",
		},
		{
			name:      "no header short document",
			text:      "Just a short note with no sources listed.",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindReferencesSection(tt.text)
			if found != tt.wantFound {
				t.Fatalf("FindReferencesSection found = %v, want %v", found, tt.wantFound)
			}
			if tt.contains != "" && !strings.Contains(got, tt.contains) {
				t.Errorf("section %q does not contain %q", got, tt.contains)
			}
			if tt.excludes != "" && strings.Contains(got, tt.excludes) {
				t.Errorf("section %q should not contain %q", got, tt.excludes)
			}
		})
	}
}

func TestFindReferencesSectionTailFallback(t *testing.T) {
	// Long unlabeled document whose tail contains a DOI: the last 40% of
	// lines is returned.
	var b strings.Builder
	for i := 0; i < 60; i++ {
		b.WriteString("body line\n")
	}
	b.WriteString("Smith, J. (2020). A paper. https://doi.org/10.1038/nature12373\n")

	got, found := FindReferencesSection(b.String())
	if !found {
		t.Fatal("expected tail fallback to find a section")
	}
	if !strings.Contains(got, "10.1038/nature12373") {
		t.Errorf("tail section missing DOI line: %q", got)
	}

	// Same length but no DOI in the tail: no section.
	var c strings.Builder
	for i := 0; i < 61; i++ {
		c.WriteString("body line\n")
	}
	if _, found := FindReferencesSection(c.String()); found {
		t.Error("expected no section for long document without DOIs")
	}
}

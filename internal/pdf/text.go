// Package pdf extracts plain text from PDF files.
package pdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText extracts the plain text of every page of a PDF file and
// returns the concatenated text plus the page count. Pages whose text
// cannot be decoded are skipped; an empty result with a positive page
// count usually means a scanned or image-only document.
func ExtractText(filePath string) (string, int, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	return readPages(r)
}

// ExtractTextReader is ExtractText over an in-memory or streamed PDF.
func ExtractTextReader(r io.ReaderAt, size int64) (string, int, error) {
	pdfReader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", 0, fmt.Errorf("reading PDF: %w", err)
	}

	return readPages(pdfReader)
}

func readPages(r *pdf.Reader) (string, int, error) {
	numPages := r.NumPage()

	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) != "" {
			pages = append(pages, text)
		}
	}

	return strings.Join(pages, "\n\n"), numPages, nil
}

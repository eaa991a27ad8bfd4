package ingest

import (
	"bytes"
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	rpdf "rsc.io/pdf"
)

// PageExtractor yields the raw text of every page of a document, in page order.
type PageExtractor interface {
	ExtractPages(data []byte) ([]string, error)
}

// PDFExtractor extracts per-page plain text from PDF bytes. It tries
// ledongthuc/pdf first and falls back to rsc.io/pdf when the primary
// reader cannot open or read the document.
type PDFExtractor struct{}

func (PDFExtractor) ExtractPages(data []byte) ([]string, error) {
	pages, err := extractPlainText(data)
	if err != nil {
		pages, err = extractContentText(data)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}
	return pages, nil
}

func extractPlainText(data []byte) ([]string, error) {
	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	n := reader.NumPage()
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// extractContentText rebuilds page text from positioned glyph runs. It is
// cruder than GetPlainText but handles some PDFs the primary reader rejects.
func extractContentText(data []byte) ([]string, error) {
	reader, err := rpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	n := reader.NumPage()
	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		var b strings.Builder
		lastY := -1.0
		for _, t := range page.Content().Text {
			if lastY >= 0 && t.Y != lastY {
				b.WriteString("\n")
			}
			b.WriteString(t.S)
			lastY = t.Y
		}
		pages = append(pages, b.String())
	}
	return pages, nil
}

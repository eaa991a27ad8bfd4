package ingest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoPages reports a document from which no text could be extracted.
var ErrNoPages = errors.New("no extractable pages")

// ParsedDocument is the full extracted text of one document plus the
// heuristic outline shown to the user before a chat session starts.
type ParsedDocument struct {
	FullText string   `json:"full_text"`
	TOC      []string `json:"toc"`
	Pages    int      `json:"pages"`
}

// Ingestor turns raw document bytes into a ParsedDocument.
type Ingestor struct {
	Extractor PageExtractor
}

func NewIngestor(ex PageExtractor) *Ingestor {
	if ex == nil {
		ex = PDFExtractor{}
	}
	return &Ingestor{Extractor: ex}
}

// Ingest concatenates all page texts in ascending page order, each prefixed
// with a [Page N] marker, and derives the outline. A failure on any page
// aborts the whole ingestion; a partial document is never returned.
func (g *Ingestor) Ingest(data []byte) (*ParsedDocument, error) {
	pages, err := g.Extractor.ExtractPages(data)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("ingest: %w", ErrNoPages)
	}

	var b strings.Builder
	empty := true
	for i, text := range pages {
		if strings.TrimSpace(text) != "" {
			empty = false
		}
		fmt.Fprintf(&b, "[Page %d] %s\n\n", i+1, text)
	}
	if empty {
		return nil, fmt.Errorf("ingest: %w", ErrNoPages)
	}

	full := b.String()
	return &ParsedDocument{
		FullText: full,
		TOC:      ExtractOutline(full),
		Pages:    len(pages),
	}, nil
}

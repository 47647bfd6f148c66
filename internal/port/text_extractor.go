package port

import "context"

// ExtractOutput is the plain text pulled from a PDF.
type ExtractOutput struct {
	// Text is every page's text, each followed by "\n".
	Text      string
	PageCount int
	Pages     []string
}

// TextExtractor abstracts PDF text extraction.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (*ExtractOutput, error)
}

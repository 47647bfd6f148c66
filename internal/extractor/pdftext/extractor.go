// Package pdftext extracts plain text from PDF bytes with ledongthuc/pdf.
package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"xactdiff/internal/domain"
	"xactdiff/internal/port"
)

// Extractor implements port.TextExtractor.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract reads every page's text. Rows within a page are separated by "\n"
// and each page's text is followed by "\n". Unreadable input yields an error
// wrapping domain.ErrExtractionFailed.
func (e *Extractor) Extract(ctx context.Context, data []byte) (out *port.ExtractOutput, err error) {
	// The reader panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%w: %v", domain.ErrExtractionFailed, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	var sb strings.Builder

	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			sb.WriteString("\n")
			continue
		}

		text, err := pageText(page)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", domain.ErrExtractionFailed, i, err)
		}
		pages = append(pages, text)
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return &port.ExtractOutput{
		Text:      sb.String(),
		PageCount: numPages,
		Pages:     pages,
	}, nil
}

// pageText joins the page's text rows top to bottom. Runs within a row are
// separated by a single space unless one side already carries whitespace.
func pageText(page pdf.Page) (string, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, joinRuns(row.Content))
	}
	return strings.Join(lines, "\n"), nil
}

// joinRuns concatenates a row's text runs left to right. The reader reports
// no run widths, so adjacency cannot be detected and every boundary gets a
// separator. Empty runs (emitted for Td) are skipped.
func joinRuns(runs pdf.TextHorizontal) string {
	var line strings.Builder
	for _, run := range runs {
		if run.S == "" {
			continue
		}
		if line.Len() > 0 && !endsWithSpace(line.String()) && !startsWithSpace(run.S) {
			line.WriteByte(' ')
		}
		line.WriteString(run.S)
	}
	return line.String()
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}

func endsWithSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(r)
}

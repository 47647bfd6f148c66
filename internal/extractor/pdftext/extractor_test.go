package pdftext_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xactdiff/internal/domain"
	"xactdiff/internal/extractor/pdftext"
	"xactdiff/internal/parser"
	"xactdiff/internal/port"
)

var _ port.TextExtractor = (*pdftext.Extractor)(nil)

func TestExtract_NotAPDF(t *testing.T) {
	out, err := pdftext.New().Extract(context.Background(), []byte("plain text, not a pdf"))

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtract_Empty(t *testing.T) {
	out, err := pdftext.New().Extract(context.Background(), nil)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtract_TruncatedHeader(t *testing.T) {
	out, err := pdftext.New().Extract(context.Background(), []byte("%PDF-1.4\n%%EOF"))

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

// textRun is a string drawn at (x, y) in page space.
type textRun struct {
	x, y float64
	s    string
}

// pageContent renders runs as a content stream, one positioned Tj per run.
func pageContent(runs ...textRun) string {
	var b strings.Builder
	b.WriteString("BT\n/F1 10 Tf\n")
	for _, r := range runs {
		s := strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`).Replace(r.s)
		fmt.Fprintf(&b, "1 0 0 1 %g %g Tm (%s) Tj\n", r.x, r.y, s)
	}
	b.WriteString("ET")
	return b.String()
}

// buildPDF writes a minimal uncompressed PDF with one page per content stream.
func buildPDF(contents ...string) []byte {
	var objs []string
	kids := make([]string, len(contents))
	for i := range contents {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	objs = append(objs,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(contents)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	)
	for i, c := range contents {
		objs = append(objs,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
				"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(c), c),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return buf.Bytes()
}

func TestExtract_SingleRunRow(t *testing.T) {
	data := buildPDF(pageContent(
		textRun{72, 720, "Line items"},
		textRun{72, 700, "1. Tear off shingles 10.00 SQ 0.00 500.00 Old yrs Avg. NA (50.00) 450.00"},
	))

	out, err := pdftext.New().Extract(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, 1, out.PageCount)
	assert.Equal(t, "Line items\n1. Tear off shingles 10.00 SQ 0.00 500.00 Old yrs Avg. NA (50.00) 450.00\n", out.Text)
	assert.Equal(t, []string{"Line items\n1. Tear off shingles 10.00 SQ 0.00 500.00 Old yrs Avg. NA (50.00) 450.00"}, out.Pages)
}

func TestExtract_ColumnRunsAreSeparated(t *testing.T) {
	cells := []string{"1.", "Tear off shingles", "10.00", "SQ", "0.00", "500.00", "Old yrs", "Avg.", "NA", "(50.00)", "450.00"}
	runs := make([]textRun, 0, len(cells))
	for i, c := range cells {
		runs = append(runs, textRun{x: float64(40 + 50*i), y: 700, s: c})
	}

	out, err := pdftext.New().Extract(context.Background(), buildPDF(pageContent(runs...)))
	require.NoError(t, err)
	assert.Equal(t, "1. Tear off shingles 10.00 SQ 0.00 500.00 Old yrs Avg. NA (50.00) 450.00\n", out.Text)

	res := parser.Parse(out.Text, parser.DefaultOptions())
	require.Len(t, res.Items, 1)
	assert.Equal(t, domain.ParseStrategyPrimary, res.Strategy)
	assert.Equal(t, "Tear off shingles", res.Items[0].Description)
	assert.Equal(t, 500.0, res.Items[0].RCV)
	assert.Equal(t, 450.0, res.Items[0].ACV)
}

func TestExtract_RunsOrderedByPosition(t *testing.T) {
	out, err := pdftext.New().Extract(context.Background(), buildPDF(pageContent(
		textRun{300, 700, "SQ"},
		textRun{72, 700, "2.50"},
		textRun{72, 720, "1. Remove shingles"},
		textRun{400, 700, "1,200.00 "},
		textRun{500, 700, "1,000.00"},
	)))
	require.NoError(t, err)

	assert.Equal(t, "1. Remove shingles\n2.50 SQ 1,200.00 1,000.00\n", out.Text)
}

func TestExtract_MultiPage(t *testing.T) {
	out, err := pdftext.New().Extract(context.Background(), buildPDF(
		pageContent(textRun{72, 700, "Page one"}),
		pageContent(textRun{72, 700, "Page"}, textRun{120, 700, "two"}),
		pageContent(textRun{72, 700, "Grand Total"}, textRun{72, 680, "2,200.80"}),
	))
	require.NoError(t, err)

	assert.Equal(t, 3, out.PageCount)
	assert.Equal(t, []string{"Page one", "Page two", "Grand Total\n2,200.80"}, out.Pages)
	assert.Equal(t, "Page one\nPage two\nGrand Total\n2,200.80\n", out.Text)
}

func TestExtract_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := pdftext.New().Extract(ctx, buildPDF(pageContent(textRun{72, 700, "x"})))
	assert.Nil(t, out)
	assert.ErrorIs(t, err, context.Canceled)
}

// Package csvexport renders comparison records as delimited text and XLSX.
package csvexport

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"xactdiff/internal/domain"
)

// Columns defines the delimited header row (27 columns).
var Columns = []string{
	"LineItemNumber_Estimate1",
	"Description",
	"Quantity_Estimate1",
	"Unit_Estimate1",
	"Tax_Estimate1",
	"RCV_Estimate1",
	"AgeLife_Estimate1",
	"Condition_Estimate1",
	"DepPercent_Estimate1",
	"Depreciation_Estimate1",
	"ACV_Estimate1",
	"Category_Estimate1",
	"LineItemNumber_Estimate2",
	"Quantity_Estimate2",
	"Unit_Estimate2",
	"Tax_Estimate2",
	"RCV_Estimate2",
	"AgeLife_Estimate2",
	"Condition_Estimate2",
	"DepPercent_Estimate2",
	"Depreciation_Estimate2",
	"ACV_Estimate2",
	"Category_Estimate2",
	"RCV_Diff",
	"Depreciation_Diff",
	"ACV_Diff",
	"Quantity_Diff",
}

// Separator is the field delimiter.
const Separator = "\t"

// Writer writes tab-separated rows. Rows are separated by "\n"; no newline
// follows the last row. Fields are written as-is, without quoting.
type Writer struct {
	w    io.Writer
	rows int
	err  error
}

// NewWriter creates a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes the 27-column header row.
func (w *Writer) WriteHeader() error {
	return w.writeRow(Columns)
}

// WriteRecords converts comparison records to rows and writes them.
func (w *Writer) WriteRecords(records []domain.ComparisonRecord) error {
	for i := range records {
		if err := w.writeRow(recordToRow(&records[i])); err != nil {
			return err
		}
	}
	return nil
}

// Error returns the first write error, if any.
func (w *Writer) Error() error {
	return w.err
}

func (w *Writer) writeRow(fields []string) error {
	if w.err != nil {
		return w.err
	}
	line := strings.Join(fields, Separator)
	if w.rows > 0 {
		line = "\n" + line
	}
	if _, err := io.WriteString(w.w, line); err != nil {
		w.err = err
		return err
	}
	w.rows++
	return nil
}

// RenderDelimited renders the header and one row per record.
func RenderDelimited(records []domain.ComparisonRecord) string {
	var sb strings.Builder
	w := NewWriter(&sb)
	// strings.Builder never returns a write error.
	_ = w.WriteHeader()
	_ = w.WriteRecords(records)
	return sb.String()
}

// recordToRow converts a single record to a 27-element string slice.
func recordToRow(r *domain.ComparisonRecord) []string {
	row := make([]string, len(Columns))

	row[0] = r.ItemNumber1
	row[1] = r.Description
	row[2] = formatNumber(r.Quantity1)
	row[3] = r.Unit1
	row[4] = formatNumber(r.Tax1)
	row[5] = formatNumber(r.RCV1)
	row[6] = r.AgeLife1
	row[7] = r.Condition1
	row[8] = r.DepPercent1
	row[9] = formatNumber(r.Depreciation1)
	row[10] = formatNumber(r.ACV1)
	row[11] = string(r.Category1)

	row[12] = r.ItemNumber2
	row[13] = formatNumber(r.Quantity2)
	row[14] = r.Unit2
	row[15] = formatNumber(r.Tax2)
	row[16] = formatNumber(r.RCV2)
	row[17] = r.AgeLife2
	row[18] = r.Condition2
	row[19] = r.DepPercent2
	row[20] = formatNumber(r.Depreciation2)
	row[21] = formatNumber(r.ACV2)
	row[22] = string(r.Category2)

	row[23] = formatNumber(r.RCVDiff)
	row[24] = formatNumber(r.DepreciationDiff)
	row[25] = formatNumber(r.ACVDiff)
	row[26] = formatNumber(r.QuantityDiff)

	return row
}

// formatNumber renders v in its shortest decimal form, never in exponent
// notation. Zero renders as "0".
func formatNumber(v float64) string {
	return decimal.NewFromFloat(v).String()
}

// nonFilenameChars matches characters that are not alphanumeric, hyphen, or underscore.
var nonFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// DefaultBaseName is the download name used when none is given.
const DefaultBaseName = "xactimate-comparison"

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonFilenameChars.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition header.
// Format: {sanitized_base}.{format}
func BuildFilename(base string, format domain.ExportFormat) string {
	sanitized := SanitizeFilename(base)
	if sanitized == "" {
		sanitized = DefaultBaseName
	}
	return fmt.Sprintf("%s.%s", sanitized, format)
}

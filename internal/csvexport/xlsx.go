package csvexport

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"xactdiff/internal/domain"
)

// Sheet names in the XLSX workbook.
const (
	SheetLineItems = "Line Items"
	SheetSummary   = "Summary"
)

// summaryRows pairs each summary delta with its label, in display order.
func summaryRows(r *domain.ComparisonReport) [][2]interface{} {
	s := r.SummaryComparison
	return [][2]interface{}{
		{"Matching Items", r.MatchingItems},
		{"Differences", r.Differences},
		{"Total Items", r.TotalItems},
		{"Labor Subtotal Diff", money(s.LaborSubtotalDiff)},
		{"Materials Subtotal Diff", money(s.MaterialsSubtotalDiff)},
		{"Equipment Subtotal Diff", money(s.EquipmentSubtotalDiff)},
		{"Other Subtotal Diff", money(s.OtherSubtotalDiff)},
		{"Subtotal Before O&P Diff", money(s.SubtotalBeforeOandPDiff)},
		{"Overhead & Profit Diff", money(s.OverheadAndProfitDiff)},
		{"Subtotal After O&P Diff", money(s.SubtotalAfterOandPDiff)},
		{"Sales Tax Diff", money(s.SalesTaxDiff)},
		{"Total RCV Diff", money(s.TotalRCVDiff)},
		{"Total Depreciation Diff", money(s.TotalDepreciationDiff)},
		{"Total ACV Diff", money(s.TotalACVDiff)},
		{"Grand Total Diff", money(s.GrandTotalDiff)},
	}
}

// WriteXLSX writes the report as a workbook with a line-item sheet using
// the same columns as the delimited export and a summary sheet.
func WriteXLSX(w io.Writer, r *domain.ComparisonReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetLineItems); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetLineItems, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := range r.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := recordToCells(&r.Records[i])
		if err := f.SetSheetRow(SheetLineItems, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SetSheetRow(SheetSummary, "A1", &[]interface{}{"Field", "Difference"}); err != nil {
		return fmt.Errorf("writing summary header: %w", err)
	}
	for i, pair := range summaryRows(r) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetSummary, cell, &[]interface{}{pair[0], pair[1]}); err != nil {
			return fmt.Errorf("writing summary row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// recordToCells mirrors recordToRow with numeric cells kept numeric.
func recordToCells(r *domain.ComparisonRecord) []interface{} {
	return []interface{}{
		r.ItemNumber1,
		r.Description,
		r.Quantity1,
		r.Unit1,
		money(r.Tax1),
		money(r.RCV1),
		r.AgeLife1,
		r.Condition1,
		r.DepPercent1,
		money(r.Depreciation1),
		money(r.ACV1),
		string(r.Category1),
		r.ItemNumber2,
		r.Quantity2,
		r.Unit2,
		money(r.Tax2),
		money(r.RCV2),
		r.AgeLife2,
		r.Condition2,
		r.DepPercent2,
		money(r.Depreciation2),
		money(r.ACV2),
		string(r.Category2),
		money(r.RCVDiff),
		money(r.DepreciationDiff),
		money(r.ACVDiff),
		r.QuantityDiff,
	}
}

// money rounds to cents.
func money(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

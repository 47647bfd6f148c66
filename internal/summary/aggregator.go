// Package summary derives a document's SummaryTotals, either by recomputing
// them from classified line items or by reading labelled figures out of the
// document text.
package summary

import (
	"fmt"

	"github.com/shopspring/decimal"

	"xactdiff/internal/domain"
)

// Aggregator recomputes summary totals with fixed markup and tax rates.
type Aggregator struct {
	markupPercent float64
	taxPercent    float64
}

// NewAggregator creates an Aggregator. Rates are percentages (20 means 20%).
func NewAggregator(markupPercent, taxPercent float64) *Aggregator {
	return &Aggregator{markupPercent: markupPercent, taxPercent: taxPercent}
}

// Summarize derives totals with the given strategy. Recompute uses items;
// Extract reads text.
func (a *Aggregator) Summarize(strategy domain.SummaryStrategy, items []domain.LineItem, text string) (domain.SummaryTotals, error) {
	switch strategy {
	case domain.SummaryStrategyRecompute:
		return a.Recompute(items), nil
	case domain.SummaryStrategyExtract:
		return Extract(text), nil
	default:
		return domain.SummaryTotals{}, fmt.Errorf("unknown summary strategy %q", strategy)
	}
}

// Recompute sums RCV per category and derives the markup, tax and totals.
// Overhead & Profit line items count toward depreciation and ACV totals but
// not toward any of the four category subtotals. Arithmetic runs in decimal;
// each figure is converted to float64 once.
func (a *Aggregator) Recompute(items []domain.LineItem) domain.SummaryTotals {
	var labor, materials, equipment, other, depreciation, acv decimal.Decimal

	for i := range items {
		item := &items[i]
		rcv := decimal.NewFromFloat(item.RCV)
		switch item.Category {
		case domain.CategoryLabor:
			labor = labor.Add(rcv)
		case domain.CategoryMaterials:
			materials = materials.Add(rcv)
		case domain.CategoryEquipment:
			equipment = equipment.Add(rcv)
		case domain.CategoryOther:
			other = other.Add(rcv)
		}
		depreciation = depreciation.Add(decimal.NewFromFloat(item.Depreciation))
		acv = acv.Add(decimal.NewFromFloat(item.ACV))
	}

	// Derived figures, in dependency order.
	before := decimal.Sum(labor, materials, equipment, other)
	markup := before.Mul(percent(a.markupPercent))
	after := before.Add(markup)
	tax := after.Mul(percent(a.taxPercent))

	return domain.SummaryTotals{
		LaborSubtotal:            labor.InexactFloat64(),
		MaterialsSubtotal:        materials.InexactFloat64(),
		EquipmentSubtotal:        equipment.InexactFloat64(),
		OtherSubtotal:            other.InexactFloat64(),
		SubtotalBeforeOandP:      before.InexactFloat64(),
		OverheadAndProfitPercent: a.markupPercent,
		OverheadAndProfitAmount:  markup.InexactFloat64(),
		SubtotalAfterOandP:       after.InexactFloat64(),
		SalesTaxPercent:          a.taxPercent,
		SalesTaxAmount:           tax.InexactFloat64(),
		TotalRCV:                 after.Add(tax).InexactFloat64(),
		TotalDepreciation:        depreciation.InexactFloat64(),
		TotalACV:                 acv.InexactFloat64(),
		GrandTotal:               acv.Add(tax).InexactFloat64(),
		Strategy:                 domain.SummaryStrategyRecompute,
	}
}

// percent turns a rate like 20 into the factor 0.2.
func percent(rate float64) decimal.Decimal {
	return decimal.NewFromFloat(rate).Shift(-2)
}

// Compare returns second minus first for each summary figure. No derived
// figure is recomputed.
func Compare(first, second domain.SummaryTotals) domain.SummaryComparison {
	return domain.SummaryComparison{
		LaborSubtotalDiff:       diff(first.LaborSubtotal, second.LaborSubtotal),
		MaterialsSubtotalDiff:   diff(first.MaterialsSubtotal, second.MaterialsSubtotal),
		EquipmentSubtotalDiff:   diff(first.EquipmentSubtotal, second.EquipmentSubtotal),
		OtherSubtotalDiff:       diff(first.OtherSubtotal, second.OtherSubtotal),
		SubtotalBeforeOandPDiff: diff(first.SubtotalBeforeOandP, second.SubtotalBeforeOandP),
		OverheadAndProfitDiff:   diff(first.OverheadAndProfitAmount, second.OverheadAndProfitAmount),
		SubtotalAfterOandPDiff:  diff(first.SubtotalAfterOandP, second.SubtotalAfterOandP),
		SalesTaxDiff:            diff(first.SalesTaxAmount, second.SalesTaxAmount),
		TotalRCVDiff:            diff(first.TotalRCV, second.TotalRCV),
		TotalDepreciationDiff:   diff(first.TotalDepreciation, second.TotalDepreciation),
		TotalACVDiff:            diff(first.TotalACV, second.TotalACV),
		GrandTotalDiff:          diff(first.GrandTotal, second.GrandTotal),
	}
}

// diff returns b - a computed in decimal.
func diff(a, b float64) float64 {
	return decimal.NewFromFloat(b).Sub(decimal.NewFromFloat(a)).InexactFloat64()
}

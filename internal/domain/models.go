package domain

import (
	"time"

	"github.com/google/uuid"
)

// LineItem is one priced row of an estimate.
type LineItem struct {
	ItemNumber   string   `json:"line_item_number"`
	Description  string   `json:"description"`
	Quantity     float64  `json:"quantity"`
	Unit         string   `json:"unit"`
	Tax          float64  `json:"tax"`
	RCV          float64  `json:"rcv"`
	AgeLife      string   `json:"age_life"`
	Condition    string   `json:"condition"`
	DepPercent   string   `json:"dep_percent"`
	Depreciation float64  `json:"depreciation"`
	ACV          float64  `json:"acv"`
	Category     Category `json:"category"`
}

// SummaryTotals holds one document's aggregate figures.
type SummaryTotals struct {
	LaborSubtotal            float64         `json:"labor_subtotal"`
	MaterialsSubtotal        float64         `json:"materials_subtotal"`
	EquipmentSubtotal        float64         `json:"equipment_subtotal"`
	OtherSubtotal            float64         `json:"other_subtotal"`
	SubtotalBeforeOandP      float64         `json:"subtotal_before_o_and_p"`
	OverheadAndProfitPercent float64         `json:"overhead_and_profit_percent"`
	OverheadAndProfitAmount  float64         `json:"overhead_and_profit_amount"`
	SubtotalAfterOandP       float64         `json:"subtotal_after_o_and_p"`
	SalesTaxPercent          float64         `json:"sales_tax_percent"`
	SalesTaxAmount           float64         `json:"sales_tax_amount"`
	TotalRCV                 float64         `json:"total_rcv"`
	TotalDepreciation        float64         `json:"total_depreciation"`
	TotalACV                 float64         `json:"total_acv"`
	GrandTotal               float64         `json:"grand_total"`
	Strategy                 SummaryStrategy `json:"strategy"`
}

// Document is a parsed estimate held in memory for the lifetime of a session.
type Document struct {
	ID            uuid.UUID     `json:"id"`
	Filename      string        `json:"filename"`
	LineItems     []LineItem    `json:"line_items"`
	Summary       SummaryTotals `json:"summary"`
	PageCount     int           `json:"page_count"`
	TextLength    int           `json:"text_length"`
	ParseStrategy ParseStrategy `json:"parse_strategy"`
	UploadedAt    time.Time     `json:"uploaded_at"`
}

// DocumentTotals are the raw line-item sums shown next to an uploaded file.
type DocumentTotals struct {
	LineItemCount     int     `json:"line_item_count"`
	TotalRCV          float64 `json:"total_rcv"`
	TotalACV          float64 `json:"total_acv"`
	TotalDepreciation float64 `json:"total_depreciation"`
}

// Totals sums RCV, ACV and depreciation straight from the line items,
// independent of the summary strategy.
func (d *Document) Totals() DocumentTotals {
	t := DocumentTotals{LineItemCount: len(d.LineItems)}
	for i := range d.LineItems {
		t.TotalRCV += d.LineItems[i].RCV
		t.TotalACV += d.LineItems[i].ACV
		t.TotalDepreciation += d.LineItems[i].Depreciation
	}
	return t
}

// ComparisonRecord is one reconciled entry keyed by description.
// Fields for a side that did not contain the description hold zero values.
type ComparisonRecord struct {
	Description string `json:"description"`

	ItemNumber1   string   `json:"lineItemNumber_Estimate1"`
	Quantity1     float64  `json:"quantity_Estimate1"`
	Unit1         string   `json:"unit_Estimate1"`
	Tax1          float64  `json:"tax_Estimate1"`
	RCV1          float64  `json:"rcv_Estimate1"`
	AgeLife1      string   `json:"ageLife_Estimate1"`
	Condition1    string   `json:"condition_Estimate1"`
	DepPercent1   string   `json:"depPercent_Estimate1"`
	Depreciation1 float64  `json:"depreciation_Estimate1"`
	ACV1          float64  `json:"acv_Estimate1"`
	Category1     Category `json:"category_Estimate1"`

	ItemNumber2   string   `json:"lineItemNumber_Estimate2"`
	Quantity2     float64  `json:"quantity_Estimate2"`
	Unit2         string   `json:"unit_Estimate2"`
	Tax2          float64  `json:"tax_Estimate2"`
	RCV2          float64  `json:"rcv_Estimate2"`
	AgeLife2      string   `json:"ageLife_Estimate2"`
	Condition2    string   `json:"condition_Estimate2"`
	DepPercent2   string   `json:"depPercent_Estimate2"`
	Depreciation2 float64  `json:"depreciation_Estimate2"`
	ACV2          float64  `json:"acv_Estimate2"`
	Category2     Category `json:"category_Estimate2"`

	RCVDiff          float64 `json:"rcv_Diff"`
	DepreciationDiff float64 `json:"depreciation_Diff"`
	ACVDiff          float64 `json:"acv_Diff"`
	QuantityDiff     float64 `json:"quantity_Diff"`
}

// Matches reports whether every numeric delta is exactly zero.
// Text fields (unit, condition, age/life, category) are never compared.
func (r *ComparisonRecord) Matches() bool {
	return r.RCVDiff == 0 && r.DepreciationDiff == 0 && r.ACVDiff == 0 && r.QuantityDiff == 0
}

// SummaryComparison holds second-minus-first deltas of two SummaryTotals.
type SummaryComparison struct {
	LaborSubtotalDiff       float64 `json:"laborSubtotal_Diff"`
	MaterialsSubtotalDiff   float64 `json:"materialsSubtotal_Diff"`
	EquipmentSubtotalDiff   float64 `json:"equipmentSubtotal_Diff"`
	OtherSubtotalDiff       float64 `json:"otherSubtotal_Diff"`
	SubtotalBeforeOandPDiff float64 `json:"subtotalBeforeOandP_Diff"`
	OverheadAndProfitDiff   float64 `json:"overheadAndProfit_Diff"`
	SubtotalAfterOandPDiff  float64 `json:"subtotalAfterOandP_Diff"`
	SalesTaxDiff            float64 `json:"salesTax_Diff"`
	TotalRCVDiff            float64 `json:"totalRCV_Diff"`
	TotalDepreciationDiff   float64 `json:"totalDepreciation_Diff"`
	TotalACVDiff            float64 `json:"totalACV_Diff"`
	GrandTotalDiff          float64 `json:"grandTotal_Diff"`
}

// ComparisonReport is the result of reconciling two documents.
type ComparisonReport struct {
	ID                uuid.UUID          `json:"id"`
	FirstDocumentID   uuid.UUID          `json:"first_document_id"`
	SecondDocumentID  uuid.UUID          `json:"second_document_id"`
	MatchingItems     int                `json:"matchingItems"`
	Differences       int                `json:"differences"`
	TotalItems        int                `json:"totalItems"`
	Records           []ComparisonRecord `json:"detailedComparison"`
	SummaryComparison SummaryComparison  `json:"page5Comparison"`
	Delimited         string             `json:"csvData"`
	CreatedAt         time.Time          `json:"created_at"`
}

// ReportRollup sums each side's line-item money columns across all records.
type ReportRollup struct {
	TotalRCV1          float64 `json:"total_rcv_estimate1"`
	TotalRCV2          float64 `json:"total_rcv_estimate2"`
	TotalACV1          float64 `json:"total_acv_estimate1"`
	TotalACV2          float64 `json:"total_acv_estimate2"`
	TotalDepreciation1 float64 `json:"total_depreciation_estimate1"`
	TotalDepreciation2 float64 `json:"total_depreciation_estimate2"`
	RCVDiff            float64 `json:"rcv_diff"`
	ACVDiff            float64 `json:"acv_diff"`
	DepreciationDiff   float64 `json:"depreciation_diff"`
}

// Rollup computes the per-side money totals shown in the results view.
func (r *ComparisonReport) Rollup() ReportRollup {
	var out ReportRollup
	for i := range r.Records {
		rec := &r.Records[i]
		out.TotalRCV1 += rec.RCV1
		out.TotalRCV2 += rec.RCV2
		out.TotalACV1 += rec.ACV1
		out.TotalACV2 += rec.ACV2
		out.TotalDepreciation1 += rec.Depreciation1
		out.TotalDepreciation2 += rec.Depreciation2
	}
	out.RCVDiff = out.TotalRCV2 - out.TotalRCV1
	out.ACVDiff = out.TotalACV2 - out.TotalACV1
	out.DepreciationDiff = out.TotalDepreciation2 - out.TotalDepreciation1
	return out
}

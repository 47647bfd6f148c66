// Package reconcile merges two estimates' line items into a description-keyed
// comparison report.
package reconcile

import (
	"time"

	"github.com/google/uuid"

	"xactdiff/internal/csvexport"
	"xactdiff/internal/domain"
	"xactdiff/internal/summary"
)

// Merge builds the union of both item sequences keyed by raw description.
// Keys from first keep first-pass order; keys only in second are appended in
// second's order. A description repeated within one sequence overwrites that
// side of its record, keeping the position of the first occurrence.
func Merge(first, second []domain.LineItem) Records {
	var recs Records

	for i := range first {
		rec := recs.upsert(first[i].Description)
		setFirst(rec, &first[i])
		computeDeltas(rec)
	}
	for i := range second {
		rec := recs.upsert(second[i].Description)
		setSecond(rec, &second[i])
		computeDeltas(rec)
	}
	return recs
}

// Compare reconciles two documents into a report, including summary deltas
// and the rendered delimited text.
func Compare(first, second *domain.Document) *domain.ComparisonReport {
	recs := Merge(first.LineItems, second.LineItems)
	records := recs.Slice()

	matching := 0
	for i := range records {
		if records[i].Matches() {
			matching++
		}
	}

	return &domain.ComparisonReport{
		ID:                uuid.New(),
		FirstDocumentID:   first.ID,
		SecondDocumentID:  second.ID,
		MatchingItems:     matching,
		Differences:       len(records) - matching,
		TotalItems:        len(records),
		Records:           records,
		SummaryComparison: summary.Compare(first.Summary, second.Summary),
		Delimited:         csvexport.RenderDelimited(records),
		CreatedAt:         time.Now().UTC(),
	}
}

func setFirst(rec *domain.ComparisonRecord, item *domain.LineItem) {
	rec.ItemNumber1 = item.ItemNumber
	rec.Quantity1 = item.Quantity
	rec.Unit1 = item.Unit
	rec.Tax1 = item.Tax
	rec.RCV1 = item.RCV
	rec.AgeLife1 = item.AgeLife
	rec.Condition1 = item.Condition
	rec.DepPercent1 = item.DepPercent
	rec.Depreciation1 = item.Depreciation
	rec.ACV1 = item.ACV
	rec.Category1 = item.Category
}

func setSecond(rec *domain.ComparisonRecord, item *domain.LineItem) {
	rec.ItemNumber2 = item.ItemNumber
	rec.Quantity2 = item.Quantity
	rec.Unit2 = item.Unit
	rec.Tax2 = item.Tax
	rec.RCV2 = item.RCV
	rec.AgeLife2 = item.AgeLife
	rec.Condition2 = item.Condition
	rec.DepPercent2 = item.DepPercent
	rec.Depreciation2 = item.Depreciation
	rec.ACV2 = item.ACV
	rec.Category2 = item.Category
}

// computeDeltas sets second minus first; an absent side contributes zero.
func computeDeltas(rec *domain.ComparisonRecord) {
	rec.RCVDiff = rec.RCV2 - rec.RCV1
	rec.DepreciationDiff = rec.Depreciation2 - rec.Depreciation1
	rec.ACVDiff = rec.ACV2 - rec.ACV1
	rec.QuantityDiff = rec.Quantity2 - rec.Quantity1
}

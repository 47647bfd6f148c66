package summary

import (
	"regexp"
	"strconv"
	"strings"

	"xactdiff/internal/domain"
)

// Label locates one summary figure by the text that precedes it on a line.
type Label struct {
	Field   string
	Pattern *regexp.Regexp
	set     func(*domain.SummaryTotals, float64)
}

// Labels are matched against every line of the document. Only the first
// line carrying both the label and a number sets the field.
var Labels = []Label{
	{"labor_subtotal", regexp.MustCompile(`(?i)\blabor\s+sub\s*total\b`),
		func(s *domain.SummaryTotals, v float64) { s.LaborSubtotal = v }},
	{"materials_subtotal", regexp.MustCompile(`(?i)\bmaterials?\s+sub\s*total\b`),
		func(s *domain.SummaryTotals, v float64) { s.MaterialsSubtotal = v }},
	{"equipment_subtotal", regexp.MustCompile(`(?i)\bequipment\s+sub\s*total\b`),
		func(s *domain.SummaryTotals, v float64) { s.EquipmentSubtotal = v }},
	{"other_subtotal", regexp.MustCompile(`(?i)\bother\s+sub\s*total\b`),
		func(s *domain.SummaryTotals, v float64) { s.OtherSubtotal = v }},
	{"subtotal_before_o_and_p", regexp.MustCompile(`(?i)\bsub\s*total\s+(?:before|pre)\s+(?:o\s*&\s*p|overhead)`),
		func(s *domain.SummaryTotals, v float64) { s.SubtotalBeforeOandP = v }},
	{"overhead_and_profit", regexp.MustCompile(`(?i)^\s*(?:overhead\s*(?:&|and)\s*profit|o\s*&\s*p)\b`),
		func(s *domain.SummaryTotals, v float64) { s.OverheadAndProfitAmount = v }},
	{"subtotal_after_o_and_p", regexp.MustCompile(`(?i)\bsub\s*total\s+(?:after|with|incl\.?)\s+(?:o\s*&\s*p|overhead)`),
		func(s *domain.SummaryTotals, v float64) { s.SubtotalAfterOandP = v }},
	{"sales_tax", regexp.MustCompile(`(?i)^\s*(?:material\s+)?sales\s+tax\b`),
		func(s *domain.SummaryTotals, v float64) { s.SalesTaxAmount = v }},
	{"total_rcv", regexp.MustCompile(`(?i)^\s*(?:total\s+)?(?:rcv|replacement\s+cost\s+value)\b`),
		func(s *domain.SummaryTotals, v float64) { s.TotalRCV = v }},
	{"total_depreciation", regexp.MustCompile(`(?i)^\s*(?:total|less)\s+depreciation\b`),
		func(s *domain.SummaryTotals, v float64) { s.TotalDepreciation = v }},
	{"total_acv", regexp.MustCompile(`(?i)^\s*(?:total\s+)?(?:acv|actual\s+cash\s+value)\b`),
		func(s *domain.SummaryTotals, v float64) { s.TotalACV = v }},
	{"grand_total", regexp.MustCompile(`(?i)^\s*(?:grand\s+total|net\s+claim)\b`),
		func(s *domain.SummaryTotals, v float64) { s.GrandTotal = v }},
}

// amountRe finds a money figure; a trailing %, optionally after spaces, marks
// a rate, not an amount.
var amountRe = regexp.MustCompile(`\$?\s*(\d[\d,]*(?:\.\d+)?)(\s*%)?`)

// Extract reads summary figures straight from text. Fields whose label never
// appears with a number stay zero, and derived-figure relationships are not
// enforced.
func Extract(text string) domain.SummaryTotals {
	s := domain.SummaryTotals{Strategy: domain.SummaryStrategyExtract}
	found := make([]bool, len(Labels))

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		for i := range Labels {
			if found[i] {
				continue
			}
			loc := Labels[i].Pattern.FindStringIndex(line)
			if loc == nil {
				continue
			}
			if v, ok := firstAmount(line[loc[1]:]); ok {
				Labels[i].set(&s, v)
				found[i] = true
			}
		}
	}
	return s
}

// firstAmount returns the first non-percentage number in s.
func firstAmount(s string) (float64, bool) {
	for _, m := range amountRe.FindAllStringSubmatch(s, -1) {
		if m[2] != "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}

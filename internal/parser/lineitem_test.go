package parser_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xactdiff/internal/domain"
	"xactdiff/internal/parser"
)

const primaryText = `Insured: J. Smith
Line items
1. Tear off shingles 10.00 SQ 0.00 500.00 NA Avg. NA (50.00) 450.00

2. Roofing felt - 15 lb 3.00 SQ 12.50 1,234.50 NA Good NA (100.00) 1,134.50
3. Drip edge ,, LF 0.00 80.00 NA Avg. NA (8.00) 72.00
Totals: 1,734.50
`

const fallbackText = `ESTIMATE
1. Remove shingles
Comp shingle removal
2.50 SQ 1,200.00 1,000.00
2. Ridge vent
10 LF 300.00 250.00
a
b
c
7 EA 10.00 9.00
`

func TestSplitLines_DropsBlankKeepsRaw(t *testing.T) {
	lines := parser.SplitLines("  a \n\n   \n\tb\n")
	assert.Equal(t, []string{"  a ", "\tb"}, lines)
}

func TestParseWith_Primary(t *testing.T) {
	res, err := parser.ParseWith(domain.ParseStrategyPrimary, primaryText, parser.DefaultOptions())
	require.NoError(t, err)

	require.Len(t, res.Items, 2)
	assert.Equal(t, domain.ParseStrategyPrimary, res.Strategy)

	first := res.Items[0]
	assert.Equal(t, "1", first.ItemNumber)
	assert.Equal(t, "Tear off shingles", first.Description)
	assert.Equal(t, 10.0, first.Quantity)
	assert.Equal(t, "SQ", first.Unit)
	assert.Equal(t, 0.0, first.Tax)
	assert.Equal(t, 500.0, first.RCV)
	assert.Equal(t, "NA", first.AgeLife)
	assert.Equal(t, "Avg.", first.Condition)
	assert.Equal(t, "NA", first.DepPercent)
	assert.Equal(t, 50.0, first.Depreciation)
	assert.Equal(t, 450.0, first.ACV)
	assert.Empty(t, first.Category)

	second := res.Items[1]
	assert.Equal(t, "2", second.ItemNumber)
	assert.Equal(t, "Roofing felt - 15 lb", second.Description)
	assert.Equal(t, 3.0, second.Quantity)
	assert.Equal(t, 12.5, second.Tax)
	assert.Equal(t, 1234.5, second.RCV)
	assert.Equal(t, "Good", second.Condition)
	assert.Equal(t, 100.0, second.Depreciation)
	assert.Equal(t, 1134.5, second.ACV)
}

func TestParseWith_Primary_DropsNonNumericRows(t *testing.T) {
	res, err := parser.ParseWith(domain.ParseStrategyPrimary, primaryText, parser.DefaultOptions())
	require.NoError(t, err)

	for _, item := range res.Items {
		assert.NotEqual(t, "Drip edge", item.Description)
	}
	require.Equal(t, 1, res.Dropped())
	w := res.Warnings[0]
	assert.Equal(t, "quantity", w.Field)
	assert.Equal(t, 5, w.Line)
	assert.Contains(t, w.Text, "Drip edge")
	assert.ErrorIs(t, w, strconv.ErrSyntax)
}

func TestParseWith_Primary_BadRCV(t *testing.T) {
	text := "4. Ridge cap 2.00 LF 0.00 , NA Avg. NA (1.00) 9.00"

	res, err := parser.ParseWith(domain.ParseStrategyPrimary, text, parser.DefaultOptions())
	require.NoError(t, err)

	assert.Empty(t, res.Items)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "rcv", res.Warnings[0].Field)
}

func TestParseWith_Fallback(t *testing.T) {
	res, err := parser.ParseWith(domain.ParseStrategyFallback, fallbackText, parser.DefaultOptions())
	require.NoError(t, err)

	require.Len(t, res.Items, 2)
	assert.Equal(t, domain.ParseStrategyFallback, res.Strategy)

	first := res.Items[0]
	assert.Equal(t, "1", first.ItemNumber)
	assert.Equal(t, "Remove shingles", first.Description)
	assert.Equal(t, 2.5, first.Quantity)
	assert.Equal(t, "SQ", first.Unit)
	assert.Equal(t, 0.0, first.Tax)
	assert.Equal(t, 1200.0, first.RCV)
	assert.Equal(t, 1000.0, first.ACV)
	assert.Equal(t, 200.0, first.Depreciation)
	assert.Equal(t, "10/25 yrs", first.AgeLife)
	assert.Equal(t, "Avg.", first.Condition)
	assert.Equal(t, "NA", first.DepPercent)

	second := res.Items[1]
	assert.Equal(t, "2", second.ItemNumber)
	assert.Equal(t, "Ridge vent", second.Description)
	assert.Equal(t, 50.0, second.Depreciation)
}

func TestParseWith_Fallback_CustomPlaceholders(t *testing.T) {
	opts := parser.Options{DefaultAgeLife: "unknown", DefaultCondition: "-"}

	res, err := parser.ParseWith(domain.ParseStrategyFallback, fallbackText, opts)
	require.NoError(t, err)

	require.NotEmpty(t, res.Items)
	assert.Equal(t, "unknown", res.Items[0].AgeLife)
	assert.Equal(t, "-", res.Items[0].Condition)
}

func TestParseWith_Fallback_NoHeaderInRange(t *testing.T) {
	text := "1. Too far\nx\ny\nz\n5 EA 10.00 9.00\n"

	res, err := parser.ParseWith(domain.ParseStrategyFallback, text, parser.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestParseWith_Fallback_HeaderWithoutDescription(t *testing.T) {
	text := "1.\n5 EA 10.00 9.00\n"

	res, err := parser.ParseWith(domain.ParseStrategyFallback, text, parser.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestParseWith_Fallback_BadRCV(t *testing.T) {
	text := "1. Thing\n3 EA , 9.00\n"

	res, err := parser.ParseWith(domain.ParseStrategyFallback, text, parser.DefaultOptions())
	require.NoError(t, err)

	assert.Empty(t, res.Items)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "rcv", res.Warnings[0].Field)
	assert.Equal(t, "fallback", res.Warnings[0].Strategy)
}

func TestParseWith_UnknownStrategy(t *testing.T) {
	_, err := parser.ParseWith("ocr", primaryText, parser.DefaultOptions())
	assert.Error(t, err)
}

func TestParse_PrimaryWins(t *testing.T) {
	res := parser.Parse(primaryText+fallbackText, parser.DefaultOptions())

	assert.Equal(t, domain.ParseStrategyPrimary, res.Strategy)
	assert.Len(t, res.Items, 2)
}

func TestParse_FallsBackWhenPrimaryEmpty(t *testing.T) {
	res := parser.Parse(fallbackText, parser.DefaultOptions())

	assert.Equal(t, domain.ParseStrategyFallback, res.Strategy)
	assert.Len(t, res.Items, 2)
}

func TestParse_NothingMatches(t *testing.T) {
	res := parser.Parse("just some prose\nwith no numbers\n", parser.DefaultOptions())

	assert.Empty(t, res.Items)
	assert.Empty(t, res.Strategy)
}

func TestParse_Idempotent(t *testing.T) {
	a := parser.Parse(primaryText, parser.DefaultOptions())
	b := parser.Parse(primaryText, parser.DefaultOptions())
	assert.Equal(t, a, b)

	c := parser.Parse(fallbackText, parser.DefaultOptions())
	d := parser.Parse(fallbackText, parser.DefaultOptions())
	assert.Equal(t, c, d)
}

func TestLineError_Unwrap(t *testing.T) {
	res := parser.Parse("9. Bad row ,, SQ 0.00 1.00 NA Avg. NA (0.00) 1.00", parser.DefaultOptions())

	require.Len(t, res.Warnings, 1)
	var target *parser.LineError
	assert.True(t, errors.As(res.Warnings[0], &target))
	assert.Contains(t, res.Warnings[0].Error(), "primary line 1: invalid quantity")
}

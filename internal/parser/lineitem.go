// Package parser turns extracted estimate text into structured line items.
package parser

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"xactdiff/internal/domain"
)

var (
	// primaryRe matches a full single-line row:
	// number. description qty unit tax rcv age/life condition dep% (depreciation) acv
	primaryRe = regexp.MustCompile(`^(\d+)\.\s+(.+?)\s+([\d,]+\.?\d*)\s+([A-Z]+)\s+([\d,]+\.?\d*)\s+([\d,]+\.?\d*)\s+([^0-9]+?)\s+([^0-9]+?)\s+([^0-9]+?)\s+\(?([\d,]+\.?\d*)\)?\s+([\d,]+\.?\d*)`)

	// fallbackRe matches a bare "qty unit rcv acv" run anywhere on a line.
	fallbackRe = regexp.MustCompile(`(\d+\.?\d*)\s+([A-Z]+)\s+([\d,]+\.?\d*)\s+([\d,]+\.?\d*)`)

	itemHeaderRe       = regexp.MustCompile(`^(\d+)\.`)
	itemHeaderPrefixRe = regexp.MustCompile(`^\d+\.\s*`)
)

// lookBack is how many preceding lines the fallback pattern searches for an
// item header.
const lookBack = 3

var errNotFinite = errors.New("not a finite number")

// Options holds the placeholders the fallback pattern fills in for fields it
// cannot see.
type Options struct {
	DefaultAgeLife   string
	DefaultCondition string
}

// DefaultOptions returns the standard placeholders.
func DefaultOptions() Options {
	return Options{DefaultAgeLife: "10/25 yrs", DefaultCondition: "Avg."}
}

// Result is the output of one parse run.
type Result struct {
	Items []domain.LineItem
	// Strategy is the pattern that produced Items. Empty when no pattern
	// produced anything.
	Strategy domain.ParseStrategy
	// Warnings lists candidate lines dropped by numeric validation.
	Warnings []*LineError
}

// Dropped returns the number of candidate lines discarded by numeric validation.
func (r *Result) Dropped() int {
	return len(r.Warnings)
}

// SplitLines splits text on "\n" and keeps only lines that are not blank.
// Lines are returned untrimmed.
func SplitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// ParseWith runs exactly one pattern over text. Items are returned
// uncategorized.
func ParseWith(strategy domain.ParseStrategy, text string, opts Options) (Result, error) {
	lines := SplitLines(text)
	switch strategy {
	case domain.ParseStrategyPrimary:
		items, warnings := parsePrimary(lines)
		return Result{Items: items, Strategy: strategy, Warnings: warnings}, nil
	case domain.ParseStrategyFallback:
		items, warnings := parseFallback(lines, opts)
		return Result{Items: items, Strategy: strategy, Warnings: warnings}, nil
	default:
		return Result{}, fmt.Errorf("unknown parse strategy %q", strategy)
	}
}

// Parse tries the primary pattern and, only if it yields no rows, the
// fallback pattern. The two outputs are never combined.
func Parse(text string, opts Options) Result {
	return NewFallbackParser(opts, domain.ParseStrategyPrimary, domain.ParseStrategyFallback).Parse(text)
}

func parsePrimary(lines []string) ([]domain.LineItem, []*LineError) {
	var items []domain.LineItem
	var warnings []*LineError

	for i, line := range lines {
		m := primaryRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		nums := [5]float64{}
		fields := [5]struct {
			name string
			raw  string
		}{
			{"quantity", m[3]},
			{"tax", m[5]},
			{"rcv", m[6]},
			{"depreciation", m[10]},
			{"acv", m[11]},
		}
		var bad *LineError
		for k, f := range fields {
			v, err := parseNumber(f.raw)
			if err != nil {
				bad = newLineError(string(domain.ParseStrategyPrimary), i+1, line, f.name, err)
				break
			}
			nums[k] = v
		}
		if bad != nil {
			warnings = append(warnings, bad)
			continue
		}

		items = append(items, domain.LineItem{
			ItemNumber:   m[1],
			Description:  strings.TrimSpace(m[2]),
			Quantity:     nums[0],
			Unit:         m[4],
			Tax:          nums[1],
			RCV:          nums[2],
			AgeLife:      strings.TrimSpace(m[7]),
			Condition:    strings.TrimSpace(m[8]),
			DepPercent:   strings.TrimSpace(m[9]),
			Depreciation: nums[3],
			ACV:          nums[4],
		})
	}
	return items, warnings
}

func parseFallback(lines []string, opts Options) ([]domain.LineItem, []*LineError) {
	var items []domain.LineItem
	var warnings []*LineError

	for i, line := range lines {
		m := fallbackRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		number, description := findItemHeader(lines, i)
		if number == "" || description == "" {
			continue
		}

		qty, err := parseNumber(m[1])
		if err != nil {
			warnings = append(warnings, newLineError(string(domain.ParseStrategyFallback), i+1, line, "quantity", err))
			continue
		}
		rcv, err := parseNumber(m[3])
		if err != nil {
			warnings = append(warnings, newLineError(string(domain.ParseStrategyFallback), i+1, line, "rcv", err))
			continue
		}
		acv, err := parseNumber(m[4])
		if err != nil {
			warnings = append(warnings, newLineError(string(domain.ParseStrategyFallback), i+1, line, "acv", err))
			continue
		}

		items = append(items, domain.LineItem{
			ItemNumber:   number,
			Description:  description,
			Quantity:     qty,
			Unit:         m[2],
			Tax:          0,
			RCV:          rcv,
			AgeLife:      opts.DefaultAgeLife,
			Condition:    opts.DefaultCondition,
			DepPercent:   "NA",
			Depreciation: rcv - acv,
			ACV:          acv,
		})
	}
	return items, warnings
}

// findItemHeader searches up to lookBack lines above index i, nearest first,
// for a line starting "<integer>.".
func findItemHeader(lines []string, i int) (number, description string) {
	for j := i - 1; j >= 0 && j >= i-lookBack; j-- {
		hm := itemHeaderRe.FindStringSubmatch(lines[j])
		if hm == nil {
			continue
		}
		return hm[1], strings.TrimSpace(itemHeaderPrefixRe.ReplaceAllString(lines[j], ""))
	}
	return "", ""
}

// parseNumber strips thousands separators and rejects NaN and infinities.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

package parser

import (
	log "github.com/sirupsen/logrus"

	"xactdiff/internal/domain"
)

// FallbackParser tries parse strategies in order and returns the first
// output that contains at least one line item.
type FallbackParser struct {
	strategies []domain.ParseStrategy
	opts       Options
}

// NewFallbackParser creates a FallbackParser from an ordered list of strategies.
func NewFallbackParser(opts Options, strategies ...domain.ParseStrategy) *FallbackParser {
	return &FallbackParser{
		strategies: strategies,
		opts:       opts,
	}
}

// Parse returns the first non-empty result. When every strategy comes up
// empty the result has no items and no strategy; warnings from all attempts
// are kept.
func (f *FallbackParser) Parse(text string) Result {
	var warnings []*LineError

	for _, s := range f.strategies {
		res, err := ParseWith(s, text, f.opts)
		if err != nil {
			log.Printf("parser.FallbackParser: skipping %s: %v", s, err)
			continue
		}
		for _, w := range res.Warnings {
			log.Debugf("parser.FallbackParser: dropped %v (%q)", w, w.Text)
		}
		warnings = append(warnings, res.Warnings...)

		if len(res.Items) > 0 {
			res.Warnings = warnings
			return res
		}
		log.Debugf("parser.FallbackParser: %s produced no line items", s)
	}

	return Result{Warnings: warnings}
}

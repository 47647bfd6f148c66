package parser

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"xactdiff/internal/classifier"
	"xactdiff/internal/domain"
	"xactdiff/internal/summary"
)

// DocumentParser runs the parse, classify and summarize steps for one
// document's text.
type DocumentParser struct {
	parser     *FallbackParser
	classifier *classifier.Classifier
	aggregator *summary.Aggregator
	strategy   domain.SummaryStrategy
}

// NewDocumentParser creates a DocumentParser.
func NewDocumentParser(
	opts Options,
	cls *classifier.Classifier,
	agg *summary.Aggregator,
	strategy domain.SummaryStrategy,
) *DocumentParser {
	return &DocumentParser{
		parser:     NewFallbackParser(opts, domain.ParseStrategyPrimary, domain.ParseStrategyFallback),
		classifier: cls,
		aggregator: agg,
		strategy:   strategy,
	}
}

// SummaryStrategy returns the strategy applied to every parsed document.
func (p *DocumentParser) SummaryStrategy() domain.SummaryStrategy {
	return p.strategy
}

// ParseDocument builds a Document from extracted text. It returns
// domain.ErrNoLineItems when neither pattern yields a row.
func (p *DocumentParser) ParseDocument(text string, pageCount int, filename string) (*domain.Document, error) {
	res := p.parser.Parse(text)
	if len(res.Items) == 0 {
		log.Printf("parser.ParseDocument: no line items in %q (%d lines dropped)", filename, res.Dropped())
		return nil, domain.ErrNoLineItems
	}

	items := p.classifier.ClassifyAll(res.Items)

	totals, err := p.aggregator.Summarize(p.strategy, items, text)
	if err != nil {
		return nil, fmt.Errorf("summarizing %q: %w", filename, err)
	}

	log.Printf("parser.ParseDocument: %q parsed %d line items via %s strategy (%d dropped)",
		filename, len(items), res.Strategy, res.Dropped())

	return &domain.Document{
		ID:            uuid.New(),
		Filename:      filename,
		LineItems:     items,
		Summary:       totals,
		PageCount:     pageCount,
		TextLength:    len(text),
		ParseStrategy: res.Strategy,
		UploadedAt:    time.Now().UTC(),
	}, nil
}

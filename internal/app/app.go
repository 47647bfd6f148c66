// Package app wires configuration into the extraction, parsing and
// comparison services shared by the HTTP server and the CLI.
package app

import (
	"fmt"

	"xactdiff/internal/classifier"
	"xactdiff/internal/config"
	"xactdiff/internal/domain"
	"xactdiff/internal/extractor/pdftext"
	"xactdiff/internal/parser"
	"xactdiff/internal/repository/memory"
	"xactdiff/internal/service"
	"xactdiff/internal/summary"
)

// App holds the wired services.
type App struct {
	Estimates   service.EstimateService
	Comparisons service.ComparisonService
}

// New builds the service graph from cfg.
func New(cfg *config.Config) (*App, error) {
	strategy := domain.SummaryStrategy(cfg.Estimate.SummaryStrategy)
	if !domain.ValidSummaryStrategy(strategy) {
		return nil, fmt.Errorf("invalid summary strategy %q", cfg.Estimate.SummaryStrategy)
	}
	if cfg.Upload.MaxFileSizeMB <= 0 {
		return nil, fmt.Errorf("upload limit must be positive, got %d MB", cfg.Upload.MaxFileSizeMB)
	}

	// Initialize parsing pipeline
	cls := classifier.New(cfg.Classifier)
	agg := summary.NewAggregator(cfg.Estimate.MarkupPercent, cfg.Estimate.TaxPercent)
	docParser := parser.NewDocumentParser(parser.Options{
		DefaultAgeLife:   cfg.Estimate.DefaultAgeLife,
		DefaultCondition: cfg.Estimate.DefaultCondition,
	}, cls, agg, strategy)

	// Initialize stores
	docRepo := memory.NewDocumentRepo(cfg.Store.TTL, cfg.Store.MaxEntries)
	reportRepo := memory.NewReportRepo(cfg.Store.TTL, cfg.Store.MaxEntries)

	// Initialize services
	estimateSvc := service.NewEstimateService(pdftext.New(), docParser, docRepo, cfg.Upload.MaxBytes())
	comparisonSvc := service.NewComparisonService(estimateSvc, reportRepo)

	return &App{
		Estimates:   estimateSvc,
		Comparisons: comparisonSvc,
	}, nil
}

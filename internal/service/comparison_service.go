package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"xactdiff/internal/csvexport"
	"xactdiff/internal/domain"
	"xactdiff/internal/port"
	"xactdiff/internal/reconcile"
)

// ComparisonService defines the estimate comparison contract.
type ComparisonService interface {
	Compare(ctx context.Context, firstID, secondID uuid.UUID) (*domain.ComparisonReport, error)
	CompareFiles(ctx context.Context, first, second UploadInput) (*domain.ComparisonReport, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ComparisonReport, error)
	Export(ctx context.Context, id uuid.UUID, format domain.ExportFormat, w io.Writer) error
}

type comparisonService struct {
	estimates EstimateService
	reports   port.ReportStore
}

// NewComparisonService creates a new ComparisonService implementation.
func NewComparisonService(estimates EstimateService, reports port.ReportStore) ComparisonService {
	return &comparisonService{
		estimates: estimates,
		reports:   reports,
	}
}

func (s *comparisonService) Compare(ctx context.Context, firstID, secondID uuid.UUID) (*domain.ComparisonReport, error) {
	first, err := s.estimates.GetByID(ctx, firstID)
	if err != nil {
		return nil, err
	}
	second, err := s.estimates.GetByID(ctx, secondID)
	if err != nil {
		return nil, err
	}
	return s.compare(ctx, first, second)
}

// CompareFiles parses both uploads in parallel, stores them, and compares.
// Reconciliation starts only after both documents are fully parsed.
func (s *comparisonService) CompareFiles(ctx context.Context, first, second UploadInput) (*domain.ComparisonReport, error) {
	var docs [2]*domain.Document

	g, gctx := errgroup.WithContext(ctx)
	for i, input := range []UploadInput{first, second} {
		i, input := i, input
		g.Go(func() error {
			doc, err := s.estimates.Upload(gctx, input)
			if err != nil {
				return fmt.Errorf("estimate %d (%s): %w", i+1, input.Filename, err)
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.compare(ctx, docs[0], docs[1])
}

func (s *comparisonService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ComparisonReport, error) {
	return s.reports.GetReport(ctx, id)
}

func (s *comparisonService) Export(ctx context.Context, id uuid.UUID, format domain.ExportFormat, w io.Writer) error {
	if _, ok := domain.ExportContentTypes[format]; !ok {
		return domain.ErrUnsupportedExportFormat
	}

	report, err := s.reports.GetReport(ctx, id)
	if err != nil {
		return err
	}

	switch format {
	case domain.ExportFormatXLSX:
		return csvexport.WriteXLSX(w, report)
	default:
		_, err := io.WriteString(w, report.Delimited)
		return err
	}
}

func (s *comparisonService) compare(ctx context.Context, first, second *domain.Document) (*domain.ComparisonReport, error) {
	if first.Summary.Strategy != second.Summary.Strategy {
		log.Printf("comparisonService.compare: strategy mismatch %s=%s %s=%s",
			first.ID, first.Summary.Strategy, second.ID, second.Summary.Strategy)
		return nil, domain.ErrSummaryStrategyMismatch
	}

	report := reconcile.Compare(first, second)
	if err := s.reports.SaveReport(ctx, report); err != nil {
		return nil, fmt.Errorf("saving report: %w", err)
	}

	log.Printf("comparisonService.compare: report %s: %d items, %d matching, %d differences",
		report.ID, report.TotalItems, report.MatchingItems, report.Differences)
	return report, nil
}

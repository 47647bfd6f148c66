package port

import (
	"context"

	"github.com/google/uuid"

	"xactdiff/internal/domain"
)

// DocumentStore holds parsed documents for later comparison.
type DocumentStore interface {
	SaveDocument(ctx context.Context, doc *domain.Document) error
	GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error)
}

// ReportStore holds comparison reports for later retrieval and export.
type ReportStore interface {
	SaveReport(ctx context.Context, report *domain.ComparisonReport) error
	GetReport(ctx context.Context, id uuid.UUID) (*domain.ComparisonReport, error)
}

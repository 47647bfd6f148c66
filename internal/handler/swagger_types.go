package handler

import (
	"github.com/google/uuid"

	"xactdiff/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// CompareRequest represents the compare-by-id request body.
type CompareRequest struct {
	FirstID  uuid.UUID `json:"first_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	SecondID uuid.UUID `json:"second_id" binding:"required" example:"660e8400-e29b-41d4-a716-446655440001"`
}

// --- Response Types ---

// EstimateResult is a parsed document with its raw line-item sums.
type EstimateResult struct {
	*domain.Document
	Totals domain.DocumentTotals `json:"totals"`
}

// ReportResult is a comparison report with per-side roll-ups.
type ReportResult struct {
	*domain.ComparisonReport
	Rollup domain.ReportRollup `json:"rollup"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}

func newEstimateResult(doc *domain.Document) EstimateResult {
	return EstimateResult{Document: doc, Totals: doc.Totals()}
}

func newReportResult(report *domain.ComparisonReport) ReportResult {
	return ReportResult{ComparisonReport: report, Rollup: report.Rollup()}
}

package domain

import "errors"

var (
	ErrMissingFile             = errors.New("no file provided")
	ErrUnsupportedFileType     = errors.New("unsupported file type")
	ErrFileTooLarge            = errors.New("file exceeds maximum allowed size")
	ErrExtractionFailed        = errors.New("failed to extract text from PDF")
	ErrNoLineItems             = errors.New("no line items found")
	ErrDocumentNotFound        = errors.New("document not found")
	ErrReportNotFound          = errors.New("comparison report not found")
	ErrSummaryStrategyMismatch = errors.New("documents were summarized with different strategies")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)

package domain

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
)

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf": FileTypePDF,
}

// Category is the trade bucket a line item is rolled up into.
type Category string

const (
	CategoryLabor             Category = "Labor"
	CategoryMaterials         Category = "Materials"
	CategoryEquipment         Category = "Equipment"
	CategoryOverheadAndProfit Category = "Overhead & Profit"
	CategoryOther             Category = "Other"
)

// ParseStrategy identifies which text pattern produced a document's line items.
type ParseStrategy string

const (
	// ParseStrategyPrimary is the full single-line row pattern.
	ParseStrategyPrimary ParseStrategy = "primary"
	// ParseStrategyFallback is the "qty unit rcv acv" run with a look-back for the item header.
	ParseStrategyFallback ParseStrategy = "fallback"
)

// SummaryStrategy identifies how a document's SummaryTotals were derived.
type SummaryStrategy string

const (
	SummaryStrategyRecompute SummaryStrategy = "recompute"
	SummaryStrategyExtract   SummaryStrategy = "extract"
)

// ValidSummaryStrategy reports whether s is a known strategy.
func ValidSummaryStrategy(s SummaryStrategy) bool {
	return s == SummaryStrategyRecompute || s == SummaryStrategyExtract
}

// ExportFormat is a download format for a comparison report.
type ExportFormat string

const (
	ExportFormatTSV  ExportFormat = "tsv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// ExportContentTypes maps export formats to their MIME content types.
var ExportContentTypes = map[ExportFormat]string{
	ExportFormatTSV:  "text/tab-separated-values",
	ExportFormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"xactdiff/internal/csvexport"
	"xactdiff/internal/domain"
	"xactdiff/internal/service"
)

// ComparisonHandler handles estimate comparison and export endpoints.
type ComparisonHandler struct {
	comparisonService service.ComparisonService
}

// NewComparisonHandler creates a new ComparisonHandler.
func NewComparisonHandler(comparisonService service.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{comparisonService: comparisonService}
}

// Compare handles POST /api/v1/comparisons
// @Summary Compare two uploaded estimates
// @Description Reconcile two previously uploaded estimates by line-item description
// @Tags comparisons
// @Accept json
// @Produce json
// @Param request body CompareRequest true "Estimate IDs"
// @Success 201 {object} Response{data=ReportResult} "Comparison report"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 404 {object} ErrorResponseBody "Estimate not found"
// @Failure 409 {object} ErrorResponseBody "Summary strategy mismatch"
// @Router /comparisons [post]
func (h *ComparisonHandler) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "both first_id and second_id are required")
		return
	}

	report, err := h.comparisonService.Compare(c.Request.Context(), req.FirstID, req.SecondID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, newReportResult(report))
}

// CompareFiles handles POST /api/v1/comparisons/files
// @Summary Upload and compare two estimates
// @Description Parse two Xactimate PDFs in parallel and reconcile them
// @Tags comparisons
// @Accept multipart/form-data
// @Produce json
// @Param first formData file true "First estimate (PDF)"
// @Param second formData file true "Second estimate (PDF)"
// @Success 201 {object} Response{data=ReportResult} "Comparison report"
// @Failure 400 {object} ErrorResponseBody "Missing file or not a PDF"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 422 {object} ErrorResponseBody "Unreadable PDF or no line items"
// @Router /comparisons/files [post]
func (h *ComparisonHandler) CompareFiles(c *gin.Context) {
	firstFile, firstHeader, err := c.Request.FormFile("first")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "first file field is required")
		return
	}
	defer func() { _ = firstFile.Close() }()

	secondFile, secondHeader, err := c.Request.FormFile("second")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "second file field is required")
		return
	}
	defer func() { _ = secondFile.Close() }()

	report, err := h.comparisonService.CompareFiles(c.Request.Context(),
		uploadInput(firstFile, firstHeader),
		uploadInput(secondFile, secondHeader),
	)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, newReportResult(report))
}

// GetByID handles GET /api/v1/comparisons/:id
// @Summary Get a comparison report
// @Tags comparisons
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Success 200 {object} Response{data=ReportResult} "Comparison report"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Report not found"
// @Router /comparisons/{id} [get]
func (h *ComparisonHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid report ID")
		return
	}

	report, err := h.comparisonService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, newReportResult(report))
}

// Export handles GET /api/v1/comparisons/:id/export
// @Summary Download a comparison report
// @Description Download the report as tab-separated text or an XLSX workbook
// @Tags comparisons
// @Produce text/tab-separated-values
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Report ID (UUID)"
// @Param format query string false "Export format" Enums(tsv, xlsx) default(tsv)
// @Success 200 {file} file "Report file"
// @Failure 400 {object} ErrorResponseBody "Invalid ID or format"
// @Failure 404 {object} ErrorResponseBody "Report not found"
// @Router /comparisons/{id}/export [get]
func (h *ComparisonHandler) Export(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid report ID")
		return
	}

	format := domain.ExportFormat(strings.ToLower(c.DefaultQuery("format", string(domain.ExportFormatTSV))))
	contentType, ok := domain.ExportContentTypes[format]
	if !ok {
		HandleError(c, domain.ErrUnsupportedExportFormat)
		return
	}

	var buf bytes.Buffer
	if err := h.comparisonService.Export(c.Request.Context(), id, format, &buf); err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename(csvexport.DefaultBaseName, format)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

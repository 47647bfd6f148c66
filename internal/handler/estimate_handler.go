package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"xactdiff/internal/service"
)

// EstimateHandler handles single-estimate upload and lookup endpoints.
type EstimateHandler struct {
	estimateService service.EstimateService
}

// NewEstimateHandler creates a new EstimateHandler.
func NewEstimateHandler(estimateService service.EstimateService) *EstimateHandler {
	return &EstimateHandler{estimateService: estimateService}
}

// Upload handles POST /api/v1/estimates
// @Summary Upload an estimate
// @Description Parse a Xactimate PDF estimate into line items and summary totals
// @Tags estimates
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Xactimate estimate (PDF)"
// @Success 201 {object} Response{data=EstimateResult} "Estimate parsed"
// @Failure 400 {object} ErrorResponseBody "Missing file or not a PDF"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 422 {object} ErrorResponseBody "Unreadable PDF or no line items"
// @Router /estimates [post]
func (h *EstimateHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	doc, err := h.estimateService.Upload(c.Request.Context(), uploadInput(file, header))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, newEstimateResult(doc))
}

// GetByID handles GET /api/v1/estimates/:id
// @Summary Get an estimate
// @Description Get a previously uploaded estimate by ID
// @Tags estimates
// @Produce json
// @Param id path string true "Estimate ID (UUID)"
// @Success 200 {object} Response{data=EstimateResult} "Estimate"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Estimate not found"
// @Router /estimates/{id} [get]
func (h *EstimateHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid estimate ID")
		return
	}

	doc, err := h.estimateService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, newEstimateResult(doc))
}

// Debug handles POST /api/v1/estimates/debug
// @Summary Dump extracted PDF text
// @Description Return the raw extracted text of a PDF without parsing it
// @Tags estimates
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file"
// @Success 200 {object} Response{data=service.DebugReport} "Extraction diagnostics"
// @Failure 400 {object} ErrorResponseBody "Missing file or not a PDF"
// @Failure 422 {object} ErrorResponseBody "Unreadable PDF"
// @Router /estimates/debug [post]
func (h *EstimateHandler) Debug(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	report, err := h.estimateService.Debug(c.Request.Context(), uploadInput(file, header))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}

func uploadInput(file multipart.File, header *multipart.FileHeader) service.UploadInput {
	return service.UploadInput{
		Filename: header.Filename,
		Size:     header.Size,
		Body:     file,
	}
}

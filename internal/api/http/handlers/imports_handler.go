package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-analytics/internal/api/dto"
	"github.com/spec-kit/ticket-analytics/internal/domain"
	"github.com/spec-kit/ticket-analytics/internal/service"
	apperrors "github.com/spec-kit/ticket-analytics/pkg/util"
)

// ImportsHandler manages spreadsheet upload endpoints.
type ImportsHandler struct {
	service        *service.ImportService
	maxUploadBytes int64
}

// NewImportsHandler constructs handler.
func NewImportsHandler(importService *service.ImportService, maxUploadBytes int64) *ImportsHandler {
	return &ImportsHandler{service: importService, maxUploadBytes: maxUploadBytes}
}

// Upload POST /imports. Accepts a multipart file plus service key; dry_run=1
// parses without persisting.
func (h *ImportsHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file is required", nil)
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		return apperrors.NewValidationError("file exceeds upload size limit", fiber.Map{
			"max_bytes": h.maxUploadBytes,
		})
	}

	serviceKey, err := parseServiceKey(c.FormValue("service"))
	if err != nil {
		return err
	}

	f, err := fileHeader.Open()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	dryRun := c.FormValue("dry_run") == "1" || c.FormValue("dry_run") == "true"

	outcome, err := h.service.Import(c.UserContext(), service.ImportInput{
		FileName: fileHeader.Filename,
		Service:  serviceKey,
		Content:  content,
		DryRun:   dryRun,
	})
	if err != nil {
		return err
	}

	if len(outcome.Errors) > 0 {
		return apperrors.NewImportRejected("import rejected", fiber.Map{
			"errors":   outcome.Errors,
			"warnings": outcome.Warnings,
		})
	}

	resp := dto.ImportResultResponse{
		Parsed:   len(outcome.Records),
		Errors:   outcome.Errors,
		Warnings: outcome.Warnings,
	}
	if outcome.Batch != nil {
		batch := importBatchResponse(outcome.Batch)
		resp.Batch = &batch
	}

	status := http.StatusCreated
	if dryRun {
		status = http.StatusOK
	}
	return c.Status(status).JSON(fiber.Map{"data": resp})
}

// List GET /imports.
func (h *ImportsHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	batches, err := h.service.ListImports(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}

	items := make([]dto.ImportBatchResponse, 0, len(batches))
	for i := range batches {
		items = append(items, importBatchResponse(&batches[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /imports/:id.
func (h *ImportsHandler) Get(c *fiber.Ctx) error {
	batch, err := h.service.GetImport(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": importBatchResponse(batch)})
}

// Delete DELETE /imports/:id.
func (h *ImportsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteImport(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func importBatchResponse(batch *domain.ImportBatch) dto.ImportBatchResponse {
	warnings := batch.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return dto.ImportBatchResponse{
		ID:          batch.ID,
		FileName:    batch.FileName,
		Service:     batch.Service,
		Status:      batch.Status,
		TotalRows:   batch.TotalRows,
		ParsedRows:  batch.ParsedRows,
		DroppedRows: batch.DroppedRows,
		Warnings:    warnings,
		CreatedAt:   batch.CreatedAt,
	}
}

func parseServiceKey(raw string) (domain.ServiceKey, error) {
	key := domain.ServiceKey(raw)
	for _, known := range domain.KnownServiceKeys() {
		if key == known {
			return key, nil
		}
	}
	return "", apperrors.NewValidationError("unknown service key", fiber.Map{"service": raw})
}

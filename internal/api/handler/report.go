// Package handler provides HTTP handlers for the AquaWatch API.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aquawatch/aquawatch/internal/api/models"
	"github.com/aquawatch/aquawatch/internal/api/response"
	"github.com/aquawatch/aquawatch/internal/record"
	"github.com/aquawatch/aquawatch/internal/report"
	"github.com/aquawatch/aquawatch/internal/storage"
)

// ReportHandler handles report endpoints.
type ReportHandler struct {
	service *report.Service
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *report.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

// ListReports handles GET /api/reports - full collection, newest first.
func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, r, "failed to fetch reports")
		return
	}
	response.JSON(w, r, http.StatusOK, reports)
}

// CreateReport handles POST /api/reports.
func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var input models.ReportCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	created, err := h.service.Create(r.Context(), &input)
	if err != nil {
		var validationErr *report.ValidationError
		if errors.As(err, &validationErr) {
			response.BadRequest(w, r, "missing required fields", validationErr.Errors)
			return
		}
		response.InternalError(w, r, "failed to create report")
		return
	}

	location := fmt.Sprintf("/api/reports/%s", created.ID)
	response.Created(w, r, location, models.ReportResponse{
		Message: "Report submitted successfully",
		Report:  created,
	})
}

// UpdateReportStatus handles PUT /api/reports/{id} - status transition only.
func (h *ReportHandler) UpdateReportStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input models.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), id, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, record.ErrInvalidStatus):
			response.BadRequest(w, r, "status must be one of: pending, reviewed, resolved", []models.FieldError{
				{Field: "status", Message: "invalid status value", Code: "invalid"},
			})
		case errors.Is(err, storage.ErrNotFound):
			response.NotFound(w, r, "report not found")
		default:
			response.InternalError(w, r, "failed to update report status")
		}
		return
	}

	response.JSON(w, r, http.StatusOK, models.ReportResponse{
		Message: "Report status updated successfully",
		Report:  updated,
	})
}

// DeleteReport handles DELETE /api/reports/{id}.
func (h *ReportHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.NotFound(w, r, "report not found")
			return
		}
		response.InternalError(w, r, "failed to delete report")
		return
	}

	response.JSON(w, r, http.StatusOK, models.MessageResponse{
		Message: "Report deleted successfully",
	})
}

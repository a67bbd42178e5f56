package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aquawatch/aquawatch/internal/api/models"
	"github.com/aquawatch/aquawatch/internal/api/response"
	"github.com/aquawatch/aquawatch/internal/coordinate"
	"github.com/aquawatch/aquawatch/internal/record"
	"github.com/aquawatch/aquawatch/internal/storage"
)

// CoordinateHandler handles water-quality coordinate endpoints.
type CoordinateHandler struct {
	service *coordinate.Service
}

// NewCoordinateHandler creates a new CoordinateHandler.
func NewCoordinateHandler(service *coordinate.Service) *CoordinateHandler {
	return &CoordinateHandler{service: service}
}

// ListCoordinates handles GET /api/coordinates - full collection, newest first.
func (h *CoordinateHandler) ListCoordinates(w http.ResponseWriter, r *http.Request) {
	coordinates, err := h.service.List(r.Context())
	if err != nil {
		response.InternalError(w, r, "failed to fetch coordinates")
		return
	}
	response.JSON(w, r, http.StatusOK, coordinates)
}

// CreateCoordinate handles POST /api/coordinates.
func (h *CoordinateHandler) CreateCoordinate(w http.ResponseWriter, r *http.Request) {
	var input models.CoordinateCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	created, err := h.service.Create(r.Context(), &input)
	if err != nil {
		var validationErr *coordinate.ValidationError
		if errors.As(err, &validationErr) {
			response.BadRequest(w, r, "missing required fields", validationErr.Errors)
			return
		}
		response.InternalError(w, r, "failed to create coordinate")
		return
	}

	location := fmt.Sprintf("/api/coordinates/%s", created.ID)
	response.Created(w, r, location, models.CoordinateResponse{
		Message:    "Coordinate submitted successfully",
		Coordinate: created,
	})
}

// UpdateCoordinateStatus handles PUT /api/coordinates/{id} - status transition only.
func (h *CoordinateHandler) UpdateCoordinateStatus(w http.ResponseWriter, r *http.Request) {
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
			response.NotFound(w, r, "coordinate not found")
		default:
			response.InternalError(w, r, "failed to update coordinate status")
		}
		return
	}

	response.JSON(w, r, http.StatusOK, models.CoordinateResponse{
		Message:    "Coordinate status updated successfully",
		Coordinate: updated,
	})
}

// DeleteCoordinate handles DELETE /api/coordinates/{id}.
func (h *CoordinateHandler) DeleteCoordinate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.NotFound(w, r, "coordinate not found")
			return
		}
		response.InternalError(w, r, "failed to delete coordinate")
		return
	}

	response.JSON(w, r, http.StatusOK, models.MessageResponse{
		Message: "Coordinate deleted successfully",
	})
}

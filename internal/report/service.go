// Package report provides the citizen report service: validation, field
// defaults, and persistence through the storage adapter.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/aquawatch/aquawatch/internal/api/models"
	"github.com/aquawatch/aquawatch/internal/record"
	"github.com/aquawatch/aquawatch/internal/storage"
)

// Service provides report operations.
type Service struct {
	store storage.ReportStore
}

// NewService creates a new report service.
func NewService(store storage.ReportStore) *Service {
	return &Service{store: store}
}

// List retrieves all reports, newest first.
func (s *Service) List(ctx context.Context) ([]record.Report, error) {
	recs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return recs, nil
}

// Create validates input, applies defaults, and persists a new report.
// The returned report carries its assigned id, status pending, and
// identical creation/update timestamps.
func (s *Service) Create(ctx context.Context, input *models.ReportCreateRequest) (record.Report, error) {
	if fieldErrors := validateCreateInput(input); len(fieldErrors) > 0 {
		return record.Report{}, &ValidationError{Errors: fieldErrors}
	}

	severity := input.Severity
	if severity == "" {
		severity = record.DefaultSeverity
	}

	now := time.Now().UTC()
	rec := record.Report{
		Type:        input.Type,
		Location:    input.Location,
		Description: input.Description,
		Coordinates: input.Coordinates,
		Severity:    severity,
		Email:       input.Email,
		Phone:       input.Phone,
		Status:      record.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	stored, err := s.store.Insert(ctx, rec)
	if err != nil {
		return record.Report{}, fmt.Errorf("create report: %w", err)
	}
	return stored, nil
}

// UpdateStatus moves a report to a new moderation stage.
// Returns record.ErrInvalidStatus for an unknown stage and
// storage.ErrNotFound for an unknown id; neither mutates stored state.
func (s *Service) UpdateStatus(ctx context.Context, id, rawStatus string) (record.Report, error) {
	status, err := record.ParseStatus(rawStatus)
	if err != nil {
		return record.Report{}, err
	}

	updated, err := s.store.UpdateStatus(ctx, id, status)
	if err != nil {
		return record.Report{}, err
	}
	return updated, nil
}

// Delete removes a report. Returns storage.ErrNotFound for an unknown id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// validateCreateInput checks presence of the required fields.
func validateCreateInput(input *models.ReportCreateRequest) []models.FieldError {
	var fieldErrors []models.FieldError

	if input.Type == "" {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field: "type", Message: "type is required", Code: "required",
		})
	}
	if input.Location == "" {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field: "location", Message: "location is required", Code: "required",
		})
	}
	if input.Description == "" {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field: "description", Message: "description is required", Code: "required",
		})
	}
	return fieldErrors
}

// ValidationError represents validation errors.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

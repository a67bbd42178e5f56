// Package coordinate provides the water-quality measurement service:
// validation, field defaults, and persistence through the storage adapter.
package coordinate

import (
	"context"
	"fmt"
	"time"

	"github.com/aquawatch/aquawatch/internal/api/models"
	"github.com/aquawatch/aquawatch/internal/record"
	"github.com/aquawatch/aquawatch/internal/storage"
)

// Service provides coordinate operations.
type Service struct {
	store storage.CoordinateStore
}

// NewService creates a new coordinate service.
func NewService(store storage.CoordinateStore) *Service {
	return &Service{store: store}
}

// List retrieves all coordinates, newest first.
func (s *Service) List(ctx context.Context) ([]record.Coordinate, error) {
	recs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list coordinates: %w", err)
	}
	return recs, nil
}

// Create validates input, applies defaults, and persists a new coordinate.
// Optional measurements that were absent or unparseable stay null.
func (s *Service) Create(ctx context.Context, input *models.CoordinateCreateRequest) (record.Coordinate, error) {
	if fieldErrors := validateCreateInput(input); len(fieldErrors) > 0 {
		return record.Coordinate{}, &ValidationError{Errors: fieldErrors}
	}

	pathogens := input.Pathogens
	if pathogens == "" {
		pathogens = record.DefaultPathogens
	}

	now := time.Now().UTC()
	rec := record.Coordinate{
		Name:         input.Name,
		Lat:          input.Lat.Value,
		Lng:          input.Lng.Value,
		Transparency: input.Transparency.Ptr(),
		Temperature:  input.Temperature.Ptr(),
		Conductivity: input.Conductivity.Ptr(),
		WaterLevel:   input.WaterLevel.Ptr(),
		Pathogens:    pathogens,
		Description:  input.Description,
		Status:       record.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	stored, err := s.store.Insert(ctx, rec)
	if err != nil {
		return record.Coordinate{}, fmt.Errorf("create coordinate: %w", err)
	}
	return stored, nil
}

// UpdateStatus moves a coordinate to a new moderation stage.
func (s *Service) UpdateStatus(ctx context.Context, id, rawStatus string) (record.Coordinate, error) {
	status, err := record.ParseStatus(rawStatus)
	if err != nil {
		return record.Coordinate{}, err
	}

	updated, err := s.store.UpdateStatus(ctx, id, status)
	if err != nil {
		return record.Coordinate{}, err
	}
	return updated, nil
}

// Delete removes a coordinate. Returns storage.ErrNotFound for an unknown id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// validateCreateInput checks presence of the required fields. Lat and lng
// must parse to floats, whether submitted as numbers or strings.
func validateCreateInput(input *models.CoordinateCreateRequest) []models.FieldError {
	var fieldErrors []models.FieldError

	if input.Name == "" {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field: "name", Message: "name is required", Code: "required",
		})
	}
	if !input.Lat.Set {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field: "lat", Message: "lat is required and must be numeric", Code: "required",
		})
	}
	if !input.Lng.Set {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field: "lng", Message: "lng is required and must be numeric", Code: "required",
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

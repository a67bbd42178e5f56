package report_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aquawatch/aquawatch/internal/api/models"
	"github.com/aquawatch/aquawatch/internal/record"
	"github.com/aquawatch/aquawatch/internal/report"
	"github.com/aquawatch/aquawatch/internal/storage"
)

func newTestService() *report.Service {
	store := storage.NewMemoryStore[record.Report, *record.Report]()
	return report.NewService(store)
}

func TestService_Create(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	input := &models.ReportCreateRequest{
		Type:        "spill",
		Location:    "River X",
		Description: "oil sheen",
	}

	result, err := service.Create(ctx, input)
	if err != nil {
		t.Fatalf("failed to create report: %v", err)
	}

	if result.ID == "" {
		t.Error("expected report ID to be set")
	}
	if result.Status != record.StatusPending {
		t.Errorf("expected status %q, got %q", record.StatusPending, result.Status)
	}
	if result.Severity != "medium" {
		t.Errorf("expected default severity medium, got %q", result.Severity)
	}
	if result.Coordinates != "" {
		t.Errorf("expected empty coordinates default, got %q", result.Coordinates)
	}
	if !result.CreatedAt.Equal(result.UpdatedAt) {
		t.Errorf("expected createdAt == updatedAt at creation, got %v and %v",
			result.CreatedAt, result.UpdatedAt)
	}
}

func TestService_Create_KeepsSuppliedSeverity(t *testing.T) {
	service := newTestService()

	result, err := service.Create(context.Background(), &models.ReportCreateRequest{
		Type:        "spill",
		Location:    "River X",
		Description: "oil sheen",
		Severity:    "high",
		Email:       "observer@example.org",
	})
	if err != nil {
		t.Fatalf("failed to create report: %v", err)
	}

	if result.Severity != "high" {
		t.Errorf("expected severity high, got %q", result.Severity)
	}
	if result.Email != "observer@example.org" {
		t.Errorf("expected email to be kept, got %q", result.Email)
	}
}

func TestService_Create_ValidationErrors(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	tests := []struct {
		name      string
		input     *models.ReportCreateRequest
		wantField string
	}{
		{
			name:      "missing type",
			input:     &models.ReportCreateRequest{Location: "River X", Description: "oil sheen"},
			wantField: "type",
		},
		{
			name:      "missing location",
			input:     &models.ReportCreateRequest{Type: "spill", Description: "oil sheen"},
			wantField: "location",
		},
		{
			name:      "missing description",
			input:     &models.ReportCreateRequest{Type: "spill", Location: "River X"},
			wantField: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(ctx, tt.input)

			var validationErr *report.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}

			found := false
			for _, fe := range validationErr.Errors {
				if fe.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected field error for %q, got %v", tt.wantField, validationErr.Errors)
			}

			// Nothing may be stored on a rejected create.
			recs, listErr := service.List(ctx)
			if listErr != nil {
				t.Fatalf("list failed: %v", listErr)
			}
			if len(recs) != 0 {
				t.Errorf("expected no stored records, got %d", len(recs))
			}
		})
	}
}

func TestService_List_NewestFirst(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	for _, reportType := range []string{"one", "two", "three"} {
		_, err := service.Create(ctx, &models.ReportCreateRequest{
			Type:        reportType,
			Location:    "River X",
			Description: "sighting",
		})
		if err != nil {
			t.Fatalf("failed to create report: %v", err)
		}
	}

	recs, err := service.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(recs))
	}
	if recs[0].Type != "three" || recs[2].Type != "one" {
		t.Errorf("expected newest-first ordering, got %q..%q", recs[0].Type, recs[2].Type)
	}
}

func TestService_UpdateStatus(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	created, err := service.Create(ctx, &models.ReportCreateRequest{
		Type:        "spill",
		Location:    "River X",
		Description: "oil sheen",
	})
	if err != nil {
		t.Fatalf("failed to create report: %v", err)
	}

	updated, err := service.UpdateStatus(ctx, created.ID, "reviewed")
	if err != nil {
		t.Fatalf("failed to update status: %v", err)
	}
	if updated.Status != record.StatusReviewed {
		t.Errorf("expected status reviewed, got %q", updated.Status)
	}
	if updated.UpdatedAt.Before(created.CreatedAt) {
		t.Errorf("expected updatedAt >= createdAt")
	}
	if updated.Type != created.Type || updated.Location != created.Location {
		t.Error("expected non-status fields to be preserved")
	}
}

func TestService_UpdateStatus_InvalidValue(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	created, err := service.Create(ctx, &models.ReportCreateRequest{
		Type:        "spill",
		Location:    "River X",
		Description: "oil sheen",
	})
	if err != nil {
		t.Fatalf("failed to create report: %v", err)
	}

	if _, err := service.UpdateStatus(ctx, created.ID, "archived"); !errors.Is(err, record.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	// Stored state must be untouched.
	recs, err := service.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if recs[0].Status != record.StatusPending {
		t.Errorf("expected status to stay pending, got %q", recs[0].Status)
	}
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	service := newTestService()

	if _, err := service.UpdateStatus(context.Background(), "missing", "resolved"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	created, err := service.Create(ctx, &models.ReportCreateRequest{
		Type:        "spill",
		Location:    "River X",
		Description: "oil sheen",
	})
	if err != nil {
		t.Fatalf("failed to create report: %v", err)
	}

	if err := service.Delete(ctx, created.ID); err != nil {
		t.Fatalf("failed to delete report: %v", err)
	}
	if err := service.Delete(ctx, created.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

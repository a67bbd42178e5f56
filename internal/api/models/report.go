package models

import "github.com/aquawatch/aquawatch/internal/record"

// ReportCreateRequest is the body of POST /api/reports.
// Type, Location, and Description are required; everything else defaults.
type ReportCreateRequest struct {
	Type        string `json:"type"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Coordinates string `json:"coordinates"`
	Severity    string `json:"severity"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// StatusUpdateRequest is the body of PUT /api/reports/{id} and
// PUT /api/coordinates/{id}.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// ReportResponse wraps a stored report with a human-readable message.
type ReportResponse struct {
	Message string        `json:"message"`
	Report  record.Report `json:"report"`
}

// MessageResponse carries a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

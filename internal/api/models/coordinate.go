package models

import "github.com/aquawatch/aquawatch/internal/record"

// CoordinateCreateRequest is the body of POST /api/coordinates.
// Name, Lat, and Lng are required; measurements are optional and may be
// submitted as numbers or numeric strings.
type CoordinateCreateRequest struct {
	Name         string `json:"name"`
	Lat          Float  `json:"lat"`
	Lng          Float  `json:"lng"`
	Transparency Float  `json:"transparency"`
	Temperature  Float  `json:"temperature"`
	Conductivity Float  `json:"conductivity"`
	WaterLevel   Float  `json:"waterlevel"`
	Pathogens    string `json:"pathogens"`
	Description  string `json:"description"`
}

// CoordinateResponse wraps a stored coordinate with a human-readable message.
type CoordinateResponse struct {
	Message    string            `json:"message"`
	Coordinate record.Coordinate `json:"coordinate"`
}

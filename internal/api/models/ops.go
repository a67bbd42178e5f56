package models

import "time"

// HealthStatus represents the health status of the service.
type HealthStatus string

const (
	HealthStatusOK    HealthStatus = "OK"
	HealthStatusError HealthStatus = "error"
)

// StorageInfo describes the persistence backend behind the service.
type StorageInfo struct {
	Backend string  `json:"backend"`
	Status  string  `json:"status"`
	Detail  *string `json:"detail,omitempty"`
}

// Health represents the health of the service for GET /health.
type Health struct {
	Status    HealthStatus `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
	Storage   StorageInfo  `json:"storage"`
}

// ServiceInfo is the metadata document served at GET /.
type ServiceInfo struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	BuildTime string            `json:"buildTime"`
	Endpoints map[string]string `json:"endpoints"`
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/aquawatch/aquawatch/internal/api/models"
	"github.com/aquawatch/aquawatch/internal/api/response"
)

// Pinger is a lightweight connectivity probe into the storage backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	backend   string
	pinger    Pinger
}

// NewOpsHandler creates a new OpsHandler. backend names the storage backend
// in health responses ("mongo" or "file").
func NewOpsHandler(version, buildTime, backend string, pinger Pinger) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		backend:   backend,
		pinger:    pinger,
	}
}

// HealthCheck handles GET /health. A reachable backend yields 200/OK; a
// storage failure yields 500 with the failure detail, so "service up,
// storage unreachable" is distinguishable from healthy.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	health := models.Health{
		Status:    models.HealthStatusOK,
		Timestamp: time.Now().UTC(),
		Storage: models.StorageInfo{
			Backend: h.backend,
			Status:  "connected",
		},
	}

	if err := h.pinger.Ping(ctx); err != nil {
		detail := err.Error()
		health.Status = models.HealthStatusError
		health.Storage.Status = "unreachable"
		health.Storage.Detail = &detail
		response.JSON(w, r, http.StatusInternalServerError, health)
		return
	}

	response.JSON(w, r, http.StatusOK, health)
}

// ServiceInfo handles GET / - service metadata.
func (h *OpsHandler) ServiceInfo(w http.ResponseWriter, r *http.Request) {
	info := models.ServiceInfo{
		Service:   "aquawatch-api",
		Version:   h.version,
		BuildTime: h.buildTime,
		Endpoints: map[string]string{
			"reports":     "/api/reports",
			"coordinates": "/api/coordinates",
			"health":      "/health",
		},
	}
	response.JSON(w, r, http.StatusOK, info)
}

package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hiveden/hostinfo/internal/osinfo"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OSInfo is the set of host queries served by the API.
type OSInfo interface {
	CPUInfo() ([]osinfo.CPUInfo, error)
	LoadAvg() osinfo.LoadAverage
	NetworkInterfaces() ([]osinfo.NetworkInterface, error)
}

// APIHandler serves host information over HTTP.
type APIHandler struct {
	host     OSInfo
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics
}

// NewAPIHandler creates a handler answering queries from host.
func NewAPIHandler(host OSInfo, logger *slog.Logger) *APIHandler {
	if logger == nil {
		logger = slog.Default()
	}
	registry := prometheus.NewRegistry()
	return &APIHandler{
		host:     host,
		logger:   logger,
		registry: registry,
		metrics:  newMetrics(registry),
	}
}

// Register mounts every endpoint on r.
func (h *APIHandler) Register(r gin.IRouter) {
	osGroup := r.Group("/os")
	{
		osGroup.GET("/cpus", h.GetCPUInfo)
		osGroup.GET("/loadavg", h.GetLoadAvg)
		osGroup.GET("/interfaces", h.GetNetworkInterfaces)
	}

	hwGroup := r.Group("/hw")
	{
		hwGroup.GET("/system", h.GetSystemInfo)
		hwGroup.GET("/topology", h.GetTopology)
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{})))
}

// fail writes err as a JSON error body. Platform errors carry their code.
func (h *APIHandler) fail(c *gin.Context, op string, err error) {
	h.metrics.failures.WithLabelValues(op).Inc()
	h.logger.Error("query failed", "op", op, "error", err)

	var pe *osinfo.PlatformError
	if errors.As(err, &pe) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": pe.Message, "code": pe.Code})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCPUInfo handles the GET /os/cpus endpoint.
func (h *APIHandler) GetCPUInfo(c *gin.Context) {
	h.metrics.queries.WithLabelValues("cpus").Inc()

	cpus, err := h.host.CPUInfo()
	if err != nil {
		h.fail(c, "cpus", err)
		return
	}

	c.JSON(http.StatusOK, cpus)
}

// GetLoadAvg handles the GET /os/loadavg endpoint.
func (h *APIHandler) GetLoadAvg(c *gin.Context) {
	h.metrics.queries.WithLabelValues("loadavg").Inc()

	c.JSON(http.StatusOK, h.host.LoadAvg())
}

// GetNetworkInterfaces handles the GET /os/interfaces endpoint.
func (h *APIHandler) GetNetworkInterfaces(c *gin.Context) {
	h.metrics.queries.WithLabelValues("interfaces").Inc()

	ifaces, err := h.host.NetworkInterfaces()
	if err != nil {
		h.fail(c, "interfaces", err)
		return
	}

	c.JSON(http.StatusOK, ifaces)
}

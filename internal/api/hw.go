package api

import (
	"net/http"

	"github.com/hiveden/hostinfo/internal/hw"

	"github.com/gin-gonic/gin"
)

// GetSystemInfo handles the GET /hw/system endpoint.
func (h *APIHandler) GetSystemInfo(c *gin.Context) {
	h.metrics.queries.WithLabelValues("system").Inc()

	info, err := hw.GetSystemInfo()
	if err != nil {
		h.fail(c, "system", err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// GetTopology handles the GET /hw/topology endpoint.
func (h *APIHandler) GetTopology(c *gin.Context) {
	h.metrics.queries.WithLabelValues("topology").Inc()

	topo, err := hw.GetTopology()
	if err != nil {
		h.fail(c, "topology", err)
		return
	}

	c.JSON(http.StatusOK, topo)
}

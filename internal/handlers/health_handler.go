package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse is returned by the liveness probe.
type HealthResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}

// Health reports that the server is up
// @Summary     Liveness probe
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Router      /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{OK: true, Status: "ok"})
}

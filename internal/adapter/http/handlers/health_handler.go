package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports service liveness.
//
// @Summary      Health check
// @Tags         print
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /print/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "labelpress"})
}

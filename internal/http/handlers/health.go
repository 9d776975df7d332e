package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthInfo is reported by /healthcheck?verbose=1.
type HealthInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
	CorpusChars int    `json:"corpus_chars"`
}

type HealthHandler struct {
	info HealthInfo
}

func NewHealthHandler(info HealthInfo) *HealthHandler {
	return &HealthHandler{info: info}
}

// HealthCheck answers a plain "ok" for load balancers. With verbose set it
// also reports the build and how much knowledge-base text was loaded.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if c.Query("verbose") == "" {
		c.String(http.StatusOK, "ok")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "info": h.info})
}

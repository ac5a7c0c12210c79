package handlers

import (
	"log"
	"net/http"

	"jobify/internal/database"

	"github.com/gin-gonic/gin"
)

const auditPageSize = 200

func (h *Handler) ListAuditLogs(c *gin.Context) {
	logs, err := database.ListAuditLogs(h.DB, auditPageSize)
	if err != nil {
		log.Printf("[audit] list: %v", err)
		abortError(c, http.StatusInternalServerError, "Failed to fetch audit log")
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

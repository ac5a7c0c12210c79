package handlers

import (
	"context"
	"net/http"
	"strconv"

	"jobify/internal/ai"
	"jobify/internal/auth"
	"jobify/internal/database"
	"jobify/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Fetcher downloads a stored resume.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// TextExtractor turns resume bytes into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}

// Handler carries everything the API handlers touch. It is built once in
// main and shared by all requests.
type Handler struct {
	DB        *gorm.DB
	Storage   storage.Storage
	Fetcher   Fetcher
	Extractor TextExtractor
	Analyzer  *ai.Analyzer
	WebDir    string
}

func New(db *gorm.DB, store storage.Storage, fetcher Fetcher, extractor TextExtractor, analyzer *ai.Analyzer, webDir string) *Handler {
	return &Handler{
		DB:        db,
		Storage:   store,
		Fetcher:   fetcher,
		Extractor: extractor,
		Analyzer:  analyzer,
		WebDir:    webDir,
	}
}

func (h *Handler) audit(c *gin.Context, entity string, entityID uint, action string, details map[string]any) {
	var uid uint
	if id := auth.Current(c); id != nil {
		uid = id.ID
	}
	database.CreateAuditLog(h.DB, uid, entity, entityID, action, details)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func abortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// abortFailure is the envelope for endpoints whose callers read "success".
func abortFailure(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": msg})
}

// Health answers load balancer probes.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// Dashboard serves the UI shell; the page gate has already run.
func (h *Handler) Dashboard(c *gin.Context) {
	h.serveIndex(c)
}

// Static serves files from the UI bundle and falls back to index.html so
// client-side routes resolve. Unknown API paths get a JSON 404.
func (h *Handler) Static(c *gin.Context) {
	p := c.Request.URL.Path
	if strings.HasPrefix(p, "/api/") || p == "/api" {
		abortError(c, http.StatusNotFound, "Not found")
		return
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		abortError(c, http.StatusNotFound, "Not found")
		return
	}

	file := filepath.Join(h.WebDir, filepath.FromSlash(path.Clean("/"+p)))
	if info, err := os.Stat(file); err == nil && !info.IsDir() {
		c.File(file)
		return
	}
	h.serveIndex(c)
}

func (h *Handler) serveIndex(c *gin.Context) {
	index := filepath.Join(h.WebDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		c.String(http.StatusNotFound, "UI bundle not found")
		return
	}
	c.File(index)
}

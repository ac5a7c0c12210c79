package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jobify/internal/auth"
	"jobify/internal/models"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withIdentity stands in for auth.Middleware.
func withIdentity(id *auth.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id != nil {
			auth.Set(c, id)
		}
		c.Next()
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name string
		id   *auth.Identity
		want int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"user", &auth.Identity{ID: 2, Role: models.RoleUser}, http.StatusUnauthorized},
		{"admin", &auth.Identity{ID: 1, Role: models.RoleAdmin}, http.StatusOK},
	}
	for _, tt := range tests {
		r := gin.New()
		r.GET("/x", withIdentity(tt.id), RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		if w.Code != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.name, w.Code, tt.want)
		}
	}
}

func TestPageGate(t *testing.T) {
	tests := []struct {
		name     string
		id       *auth.Identity
		path     string
		wantCode int
		wantLoc  string
	}{
		{"anonymous", nil, "/dashboard/user", http.StatusFound, "/auth/login"},
		{"user on admin", &auth.Identity{ID: 2, Role: models.RoleUser}, "/dashboard/admin", http.StatusFound, "/dashboard/user"},
		{"user on user", &auth.Identity{ID: 2, Role: models.RoleUser}, "/dashboard/user", http.StatusOK, ""},
		{"admin on admin", &auth.Identity{ID: 1, Role: models.RoleAdmin}, "/dashboard/admin", http.StatusOK, ""},
	}
	for _, tt := range tests {
		r := gin.New()
		r.GET("/dashboard/*page", withIdentity(tt.id), PageGate("/auth/login", "/dashboard/user"),
			func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if w.Code != tt.wantCode {
			t.Errorf("%s: status = %d, want %d", tt.name, w.Code, tt.wantCode)
		}
		if loc := w.Header().Get("Location"); loc != tt.wantLoc {
			t.Errorf("%s: Location = %q, want %q", tt.name, loc, tt.wantLoc)
		}
	}
}

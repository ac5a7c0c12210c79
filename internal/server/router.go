package server

import (
	"time"

	"jobify/internal/auth"
	"jobify/internal/config"
	"jobify/internal/handlers"
	"jobify/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	loginPage = "/auth/login"
	userHome  = "/dashboard/user"
)

func NewRouter(cfg *config.Config, h *handlers.Handler, store *auth.Store) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.Origins()
	corsCfg.AllowCredentials = true
	corsCfg.MaxAge = 12 * time.Hour
	if len(corsCfg.AllowOrigins) > 0 {
		r.Use(cors.New(corsCfg))
	}

	r.Use(auth.Middleware(store)...)

	// HEALTHCHECK
	r.GET("/health", handlers.Health)

	if cfg.Storage.Driver == "local" {
		r.Group("/uploads", middleware.DownloadOnly()).Static("/", cfg.Storage.LocalDir)
	}

	api := r.Group("/api")

	// AUTH
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)
	api.GET("/auth/me", middleware.RequireAuth(), h.Me)

	// JOBS
	api.GET("/jobs", h.ListJobs)
	api.GET("/jobs/:id", h.GetJob)
	api.POST("/jobs", middleware.RequireAdmin(), h.CreateJob)
	api.PUT("/jobs/:id", middleware.RequireAdmin(), h.UpdateJob)
	api.DELETE("/jobs/:id", middleware.RequireAdmin(), h.DeleteJob)

	// APPLICATIONS
	apps := api.Group("/applications")
	apps.POST("", middleware.Require(auth.NonAdmin), h.SubmitApplication)
	apps.GET("", middleware.RequireAdmin(), h.ListApplications)
	apps.GET("/user", middleware.RequireAuth(), h.ListMyApplications)
	apps.GET("/export", middleware.RequireAdmin(), h.ExportApplications)
	apps.GET("/:id", middleware.RequireAuth(), h.ResumeRedirect)
	apps.PUT("/:id", middleware.RequireAdmin(), h.UpdateApplicationStatus)

	// USERS
	users := api.Group("/users", middleware.RequireAdmin())
	users.GET("", h.ListUsers)
	users.PUT("/:id", h.UpdateUserRole)
	users.DELETE("/:id", h.DeleteUser)

	// ANALYSIS
	api.GET("/analyze/:id", middleware.RequireAuth(), h.AnalyzeApplication)

	// DASHBOARD DATA
	api.GET("/stats", middleware.RequireAdmin(), h.Stats)
	api.GET("/audit", middleware.RequireAdmin(), h.ListAuditLogs)

	// PAGES
	r.GET("/dashboard/*page", middleware.PageGate(loginPage, userHome), h.Dashboard)
	r.NoRoute(h.Static)

	return r
}

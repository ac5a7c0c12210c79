package handlers

import (
	"log"
	"net/http"

	"jobify/internal/models"

	"github.com/gin-gonic/gin"
)

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type DashboardStats struct {
	ApplicationsByStatus map[models.ApplicationStatus]int64 `json:"applicationsByStatus"`
	JobsByCategory       []CategoryCount                    `json:"jobsByCategory"`
	TotalJobs            int64                              `json:"totalJobs"`
	TotalApplications    int64                              `json:"totalApplications"`
}

// Stats feeds the admin dashboard charts.
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.dashboardStats()
	if err != nil {
		log.Printf("[stats] %v", err)
		abortError(c, http.StatusInternalServerError, "Failed to compute stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) dashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		ApplicationsByStatus: make(map[models.ApplicationStatus]int64, len(models.Statuses)),
		JobsByCategory:       make([]CategoryCount, 0),
	}
	for _, s := range models.Statuses {
		stats.ApplicationsByStatus[s] = 0
	}

	var byStatus []struct {
		Status models.ApplicationStatus
		Count  int64
	}
	if err := h.DB.Model(&models.Application{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	for _, row := range byStatus {
		stats.ApplicationsByStatus[row.Status] = row.Count
		stats.TotalApplications += row.Count
	}

	if err := h.DB.Model(&models.Job{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count desc, category asc").
		Scan(&stats.JobsByCategory).Error; err != nil {
		return nil, err
	}
	for _, row := range stats.JobsByCategory {
		stats.TotalJobs += row.Count
	}
	return stats, nil
}

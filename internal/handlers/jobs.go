package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"jobify/internal/auth"
	"jobify/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type jobInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Salary      int    `json:"salary"`
}

// ListJobs is public. Optional filters: category, location, minSalary,
// maxSalary.
func (h *Handler) ListJobs(c *gin.Context) {
	q := h.DB.Preload("PostedBy").Order("id asc")

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("LOWER(category) = ?", strings.ToLower(category))
	}
	if location := strings.TrimSpace(c.Query("location")); location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}
	for _, f := range []struct {
		param string
		cond  string
	}{
		{"minSalary", "salary >= ?"},
		{"maxSalary", "salary <= ?"},
	} {
		raw := c.Query(f.param)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			abortError(c, http.StatusBadRequest, f.param+" must be an integer")
			return
		}
		q = q.Where(f.cond, v)
	}

	jobs := make([]models.Job, 0)
	if err := q.Find(&jobs).Error; err != nil {
		log.Printf("[jobs] list: %v", err)
		abortError(c, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *Handler) GetJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		abortError(c, http.StatusBadRequest, "Invalid job ID")
		return
	}
	job, ok := h.loadJob(c, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob stores the posting as given; only malformed JSON is rejected.
func (h *Handler) CreateJob(c *gin.Context) {
	var in jobInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	job := models.Job{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Location:    in.Location,
		Salary:      in.Salary,
		PostedByID:  auth.Current(c).ID,
	}
	if err := h.DB.Create(&job).Error; err != nil {
		log.Printf("[jobs] create: %v", err)
		abortError(c, http.StatusInternalServerError, "Failed to create job")
		return
	}

	h.audit(c, "job", job.ID, "create", map[string]any{"title": job.Title})
	c.JSON(http.StatusOK, job)
}

func (h *Handler) UpdateJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		abortError(c, http.StatusBadRequest, "Invalid job ID")
		return
	}
	var in jobInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var job models.Job
	if err := h.DB.First(&job, id).Error; err != nil {
		h.jobLookupFailed(c, err)
		return
	}
	err := h.DB.Model(&job).
		Select("title", "description", "category", "location", "salary").
		Updates(models.Job{
			Title:       in.Title,
			Description: in.Description,
			Category:    in.Category,
			Location:    in.Location,
			Salary:      in.Salary,
		}).Error
	if err != nil {
		log.Printf("[jobs] update #%d: %v", id, err)
		abortError(c, http.StatusInternalServerError, "Failed to update job")
		return
	}

	h.audit(c, "job", id, "update", map[string]any{"title": in.Title})

	updated, ok := h.loadJob(c, id)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteJob removes the posting. Applications to it are kept.
func (h *Handler) DeleteJob(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		abortError(c, http.StatusBadRequest, "Invalid job ID")
		return
	}
	var job models.Job
	if err := h.DB.First(&job, id).Error; err != nil {
		h.jobLookupFailed(c, err)
		return
	}
	if err := h.DB.Delete(&job).Error; err != nil {
		log.Printf("[jobs] delete #%d: %v", id, err)
		abortError(c, http.StatusInternalServerError, "Failed to delete job")
		return
	}

	h.audit(c, "job", id, "delete", map[string]any{"title": job.Title})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) loadJob(c *gin.Context, id uint) (*models.Job, bool) {
	var job models.Job
	if err := h.DB.Preload("PostedBy").First(&job, id).Error; err != nil {
		h.jobLookupFailed(c, err)
		return nil, false
	}
	return &job, true
}

func (h *Handler) jobLookupFailed(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortError(c, http.StatusNotFound, "Job not found")
		return
	}
	log.Printf("[jobs] lookup: %v", err)
	abortError(c, http.StatusInternalServerError, "Internal server error")
}

package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"jobify/internal/auth"
	"jobify/internal/extract"
	"jobify/internal/models"
	"jobify/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SubmitApplication takes a multipart form with jobId, fullName, email,
// coverLetter and the resume file.
func (h *Handler) SubmitApplication(c *gin.Context) {
	jobIDRaw := strings.TrimSpace(c.PostForm("jobId"))
	fullName := strings.TrimSpace(c.PostForm("fullName"))
	email := strings.TrimSpace(c.PostForm("email"))
	coverLetter := strings.TrimSpace(c.PostForm("coverLetter"))
	file, fileErr := c.FormFile("resume")

	if jobIDRaw == "" || fullName == "" || email == "" || coverLetter == "" || fileErr != nil {
		abortFailure(c, http.StatusBadRequest, "All fields are required")
		return
	}
	jobID, err := strconv.ParseUint(jobIDRaw, 10, 64)
	if err != nil {
		abortFailure(c, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var job models.Job
	if err := h.DB.First(&job, uint(jobID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortFailure(c, http.StatusNotFound, "Job not found")
			return
		}
		log.Printf("[applications] job #%d: %v", jobID, err)
		abortFailure(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	f, err := file.Open()
	if err != nil {
		log.Printf("[applications] open upload: %v", err)
		abortFailure(c, http.StatusInternalServerError, "Failed to read resume")
		return
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		log.Printf("[applications] read upload: %v", err)
		abortFailure(c, http.StatusInternalServerError, "Failed to read resume")
		return
	}

	ext, err := extract.ResumeExtension(data)
	if err != nil {
		abortFailure(c, http.StatusBadRequest, "Resume must be a PDF, DOCX or plain text file")
		return
	}

	url, err := h.Storage.Upload(c.Request.Context(), storage.ResumeFolder, "resume"+ext, data)
	if err != nil {
		log.Printf("[applications] upload resume: %v", err)
		abortFailure(c, http.StatusInternalServerError, "Failed to upload resume")
		return
	}

	app := models.Application{
		JobID:       job.ID,
		UserID:      auth.Current(c).ID,
		UserName:    fullName,
		Email:       email,
		JobTitle:    job.Title,
		Resume:      url,
		CoverLetter: coverLetter,
		Status:      models.StatusPending,
	}
	if err := h.DB.Create(&app).Error; err != nil {
		log.Printf("[applications] create row, resume %s left orphaned: %v", url, err)
		abortFailure(c, http.StatusInternalServerError, "Failed to save application")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "application": app})
}

func (h *Handler) ListApplications(c *gin.Context) {
	apps := make([]models.Application, 0)
	err := h.DB.Preload("Job").Preload("User").
		Order("created_at desc, id desc").
		Find(&apps).Error
	if err != nil {
		log.Printf("[applications] list: %v", err)
		abortFailure(c, http.StatusInternalServerError, "Failed to fetch applications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applications": apps})
}

// ListMyApplications returns the caller's own applications.
func (h *Handler) ListMyApplications(c *gin.Context) {
	apps := make([]models.Application, 0)
	err := h.DB.Preload("Job").
		Where("user_id = ?", auth.Current(c).ID).
		Order("created_at desc, id desc").
		Find(&apps).Error
	if err != nil {
		log.Printf("[applications] list mine: %v", err)
		abortError(c, http.StatusInternalServerError, "Failed to fetch applications")
		return
	}
	c.JSON(http.StatusOK, apps)
}

type statusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required,oneof=pending approved rejected"`
}

func (h *Handler) UpdateApplicationStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		abortFailure(c, http.StatusBadRequest, "Invalid application ID")
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortFailure(c, http.StatusBadRequest, "Invalid status")
		return
	}

	var app models.Application
	if err := h.DB.First(&app, id).Error; err != nil {
		h.applicationLookupFailed(c, err)
		return
	}
	previous := app.Status
	if err := h.DB.Model(&app).Update("status", req.Status).Error; err != nil {
		log.Printf("[applications] status #%d: %v", id, err)
		abortFailure(c, http.StatusInternalServerError, "Failed to update application")
		return
	}
	app.Status = req.Status

	h.audit(c, "application", id, "status", map[string]any{
		"from": previous,
		"to":   req.Status,
	})
	c.JSON(http.StatusOK, gin.H{"success": true, "application": app})
}

// ResumeRedirect sends the browser to the stored resume.
func (h *Handler) ResumeRedirect(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		abortError(c, http.StatusBadRequest, "Invalid application ID")
		return
	}
	var app models.Application
	if err := h.DB.Select("id", "user_id", "resume").First(&app, id).Error; err != nil {
		h.applicationLookupFailed(c, err)
		return
	}
	// other applicants' records are indistinguishable from missing ones
	if !auth.CanAccessOwned(auth.Current(c), app.UserID) {
		abortFailure(c, http.StatusNotFound, "Application not found")
		return
	}
	if app.Resume == "" {
		abortError(c, http.StatusNotFound, "Resume not found")
		return
	}
	c.Redirect(http.StatusFound, app.Resume)
}

func (h *Handler) applicationLookupFailed(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortFailure(c, http.StatusNotFound, "Application not found")
		return
	}
	log.Printf("[applications] lookup: %v", err)
	abortFailure(c, http.StatusInternalServerError, "Internal server error")
}

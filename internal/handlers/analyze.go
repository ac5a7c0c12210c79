package handlers

import (
	"errors"
	"log"
	"net/http"

	"jobify/internal/ai"
	"jobify/internal/auth"
	"jobify/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AnalyzeApplication downloads the resume, extracts its text and asks the
// model how well the candidate fits the job.
func (h *Handler) AnalyzeApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		abortFailure(c, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var app models.Application
	err := h.DB.Preload("Job").Preload("User").First(&app, id).Error
	if err == nil && !auth.CanAccessOwned(auth.Current(c), app.UserID) {
		err = gorm.ErrRecordNotFound
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortFailure(c, http.StatusNotFound, "Application not found")
		return
	}
	if err != nil {
		h.analyzeFailed(c, id, err)
		return
	}
	if app.Resume == "" {
		abortFailure(c, http.StatusBadRequest, "Resume file missing")
		return
	}

	ctx := c.Request.Context()
	data, err := h.Fetcher.Fetch(ctx, app.Resume)
	if err != nil {
		h.analyzeFailed(c, id, err)
		return
	}
	text, err := h.Extractor.Extract(ctx, data)
	if err != nil {
		h.analyzeFailed(c, id, err)
		return
	}

	result, err := h.Analyzer.Analyze(ctx, ai.Input{
		ResumeText:     text,
		CoverLetter:    app.CoverLetter,
		JobDescription: jobDescription(&app),
	})
	if err != nil {
		h.analyzeFailed(c, id, err)
		return
	}

	details := map[string]any{"reply": result.Kind.String()}
	if score, ok := result.MatchScore(); ok {
		details["matchScore"] = score
	}
	h.audit(c, "application", id, "analyze", details)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"job":         app.Job,
		"user":        app.User,
		"application": app,
		"suggestion":  result.Suggestion,
		"stats":       result.Stats,
	})
}

// jobDescription falls back to the title when the posting has no
// description or no longer exists.
func jobDescription(app *models.Application) string {
	if app.Job == nil {
		return app.JobTitle
	}
	if app.Job.Description != "" {
		return app.Job.Description
	}
	return app.Job.Title
}

func (h *Handler) analyzeFailed(c *gin.Context, id uint, err error) {
	log.Printf("[analyze] application #%d: %v", id, err)
	abortFailure(c, http.StatusInternalServerError, err.Error())
}

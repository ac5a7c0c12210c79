package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"jobify/internal/auth"
	"jobify/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, registerMessage(err))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	if req.Name == "" {
		abortError(c, http.StatusBadRequest, "Name is required")
		return
	}

	var existing models.User
	err := h.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		abortError(c, http.StatusBadRequest, "Email already registered")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[register] lookup %s: %v", req.Email, err)
		abortError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[register] hash password: %v", err)
		abortError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		// a concurrent registration won the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) || h.emailTaken(req.Email) {
			abortError(c, http.StatusBadRequest, "Email already registered")
			return
		}
		log.Printf("[register] create user %s: %v", req.Email, err)
		abortError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *Handler) emailTaken(email string) bool {
	var n int64
	err := h.DB.Model(&models.User{}).Where("email = ?", email).Count(&n).Error
	return err == nil && n > 0
}

// registerMessage reports the first failing field in words a form can show.
func registerMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}
	fe := verrs[0]
	switch fe.Field() {
	case "Name":
		return "Name is required"
	case "Email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Invalid email address"
	case "Password":
		if fe.Tag() == "required" {
			return "Password is required"
		}
		return "Password must be at least 6 characters"
	}
	return "Invalid request body"
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	var user models.User
	err := h.DB.Where("email = ?", normalizeEmail(req.Email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		log.Printf("[login] lookup: %v", err)
		abortError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		abortError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := auth.Login(c, auth.IdentityOf(&user)); err != nil {
		log.Printf("[login] save session: %v", err)
		abortError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    user,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := auth.Logout(c); err != nil {
		log.Printf("[logout] save session: %v", err)
		abortError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// Me returns the caller's stored profile. A session that outlived its user
// is treated as no session.
func (h *Handler) Me(c *gin.Context) {
	id := auth.Current(c)
	var user models.User
	if err := h.DB.First(&user, id.ID).Error; err != nil {
		abortError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

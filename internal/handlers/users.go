package handlers

import (
	"errors"
	"log"
	"net/http"

	"jobify/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (h *Handler) ListUsers(c *gin.Context) {
	users := make([]models.User, 0)
	if err := h.DB.Order("id asc").Find(&users).Error; err != nil {
		log.Printf("[users] list: %v", err)
		abortError(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

type roleRequest struct {
	Role models.UserRole `json:"role" binding:"required"`
}

func (h *Handler) UpdateUserRole(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		abortError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "Role is required")
		return
	}
	if !req.Role.Valid() {
		abortError(c, http.StatusBadRequest, "Invalid role")
		return
	}

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		userLookupFailed(c, err)
		return
	}
	previous := user.Role
	if err := h.DB.Model(&user).Update("role", req.Role).Error; err != nil {
		log.Printf("[users] role #%d: %v", id, err)
		abortError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}
	user.Role = req.Role

	h.audit(c, "user", id, "role", map[string]any{"from": previous, "to": req.Role})
	c.JSON(http.StatusOK, gin.H{"updatedUser": user})
}

// DeleteUser removes the account. Their applications are kept.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		abortError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		userLookupFailed(c, err)
		return
	}
	if err := h.DB.Delete(&user).Error; err != nil {
		log.Printf("[users] delete #%d: %v", id, err)
		abortError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	h.audit(c, "user", id, "delete", map[string]any{"email": user.Email})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func userLookupFailed(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortError(c, http.StatusNotFound, "User not found")
		return
	}
	log.Printf("[users] lookup: %v", err)
	abortError(c, http.StatusInternalServerError, "Internal server error")
}

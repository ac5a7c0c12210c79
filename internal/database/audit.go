package database

import (
	"encoding/json"
	"log"

	"jobify/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateAuditLog appends a journal entry. Failures are logged and otherwise
// ignored; the journal never blocks the mutation it describes.
func CreateAuditLog(db *gorm.DB, userID uint, entity string, entityID uint, action string, details map[string]any) {
	if db == nil {
		return
	}
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
	}
	if details != nil {
		if b, err := json.Marshal(details); err == nil {
			record.Details = datatypes.JSON(b)
		}
	}
	if err := db.Create(&record).Error; err != nil {
		log.Printf("audit: %s/%s #%d: %v", entity, action, entityID, err)
	}
}

// ListAuditLogs returns the newest entries first.
func ListAuditLogs(db *gorm.DB, limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := db.Preload("User").
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

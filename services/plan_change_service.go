package services

import (
	"backend/config"
	"backend/models"
)

func RecordPlanChange(userID, eventID uint, action, detail string) error {
	change := models.PlanChange{
		EventID: eventID,
		UserID:  userID,
		Action:  action,
		Detail:  detail,
	}
	return config.DB.Create(&change).Error
}

func ListPlanChanges(userID, eventID uint, limit int) ([]models.PlanChange, error) {
	if _, err := GetEvent(userID, eventID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	var changes []models.PlanChange
	err := config.DB.
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Limit(limit).
		Find(&changes).Error
	return changes, err
}
